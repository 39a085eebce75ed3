package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"yungwing/config"
	bookingRepo "yungwing/database/repository/booking"
	catalogRepo "yungwing/database/repository/catalog"
	"yungwing/models"
	"yungwing/services/scheduling"
	"yungwing/utils"
)

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Bookings  bookingRepo.BookingRepository
	Catalog   catalogRepo.CatalogRepository
	Reminders ReminderScheduler
	Cache     *redis.Client // optional slot cache; nil disables caching
	Logger    *zap.Logger
}

// NewDefaultBookingService constructs the service with its dependencies.
func NewDefaultBookingService(bookings bookingRepo.BookingRepository, catalog catalogRepo.CatalogRepository, reminders ReminderScheduler, cache *redis.Client) *DefaultBookingService {
	return &DefaultBookingService{
		Bookings:  bookings,
		Catalog:   catalog,
		Reminders: reminders,
		Cache:     cache,
		Logger:    utils.GetLogger().Named("booking"),
	}
}

// slotCacheTTL keeps slot listings fresh enough that a stale read only
// costs one extra conflict rejection at booking time.
const slotCacheTTL = time.Minute

func slotCacheKey(serviceID, date string) string {
	return "slots:" + serviceID + ":" + date
}

func (s *DefaultBookingService) cachedSlots(serviceID, date string) ([]models.AvailableSlot, bool) {
	if s.Cache == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	raw, err := s.Cache.Get(ctx, slotCacheKey(serviceID, date)).Result()
	if err != nil {
		return nil, false
	}
	var slots []models.AvailableSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (s *DefaultBookingService) storeSlots(serviceID, date string, slots []models.AvailableSlot) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = s.Cache.Set(ctx, slotCacheKey(serviceID, date), raw, slotCacheTTL).Err()
}

// invalidateSlots drops every cached slot listing for a date. Keys are
// per service, so a scan over the date suffix is needed.
func (s *DefaultBookingService) invalidateSlots(date string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	iter := s.Cache.Scan(ctx, 0, "slots:*:"+date, 100).Iterator()
	for iter.Next(ctx) {
		_ = s.Cache.Del(ctx, iter.Val()).Err()
	}
}

// engineOptions builds the slot generator options from configuration,
// falling back to the studio defaults when unset.
func engineOptions() scheduling.Options {
	opts := scheduling.DefaultOptions()
	cfg := config.AppConfig
	if cfg.BusinessOpen > 0 || cfg.BusinessClose > 0 {
		opts.BusinessOpen = scheduling.TimeOfDay(cfg.BusinessOpen)
		opts.BusinessClose = scheduling.TimeOfDay(cfg.BusinessClose)
	}
	if cfg.SlotStep > 0 {
		opts.SlotStep = cfg.SlotStep
	}
	return opts
}

func (s *DefaultBookingService) activeService(serviceID string) (*models.Service, error) {
	svc, err := s.Catalog.GetServiceByID(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service %s: %w", serviceID, err)
	}
	if svc == nil || !svc.IsActive {
		return nil, ErrServiceUnavailable
	}
	return svc, nil
}

// AvailableSlots lists the open windows for a service on a date.
func (s *DefaultBookingService) AvailableSlots(serviceID, date string) ([]models.AvailableSlot, error) {
	if _, err := time.Parse(utils.DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	svc, err := s.activeService(serviceID)
	if err != nil {
		return nil, err
	}
	if slots, ok := s.cachedSlots(serviceID, date); ok {
		return slots, nil
	}

	active, err := s.Bookings.ListActiveByDate(date)
	if err != nil {
		return nil, err
	}
	occupied := scheduling.BlockingIntervals(active)
	slots := scheduling.GenerateAvailableSlots(svc.Duration, occupied, engineOptions())

	out := make([]models.AvailableSlot, 0, len(slots))
	for _, slot := range slots {
		out = append(out, models.AvailableSlot{
			StartTime: slot.Interval.Start.String(),
			EndTime:   slot.Interval.End.String(),
			Duration:  slot.Duration,
		})
	}
	s.storeSlots(serviceID, date, out)
	return out, nil
}

// Create books a slot for the member. The overlap check runs twice: a
// cheap pre-check here, then again inside the repository's insert
// transaction so concurrent requests cannot both win the same window.
func (s *DefaultBookingService) Create(ctx context.Context, userID string, req CreateRequest) (*models.BookingDetail, error) {
	if _, err := time.Parse(utils.DateLayout, req.Date); err != nil {
		return nil, ErrInvalidDate
	}
	svc, err := s.activeService(req.ServiceID)
	if err != nil {
		return nil, err
	}
	if req.StaffID != "" {
		staff, err := s.Catalog.GetStaffByID(req.StaffID)
		if err != nil {
			return nil, fmt.Errorf("failed to load staff %s: %w", req.StaffID, err)
		}
		if staff == nil || !staff.IsActive {
			return nil, ErrStaffUnavailable
		}
	}

	start, err := scheduling.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := scheduling.DeriveEnd(start, svc.Duration)
	if err != nil {
		return nil, err
	}

	active, err := s.Bookings.ListActiveByDate(req.Date)
	if err != nil {
		return nil, err
	}
	proposed := scheduling.Interval{Start: start, End: end}
	if err := scheduling.ValidateNoConflict(proposed, scheduling.BlockingIntervals(active)); err != nil {
		return nil, err
	}

	record := &models.Booking{
		ID:        uuid.NewString(),
		UserID:    userID,
		ServiceID: svc.ID,
		StaffID:   req.StaffID,
		Date:      req.Date,
		Start:     int(start),
		End:       int(end),
		Status:    models.BookingPending,
		Notes:     req.Notes,
	}
	if err := s.Bookings.CreateIfNoConflict(ctx, record); err != nil {
		return nil, err
	}
	s.invalidateSlots(record.Date)
	s.Logger.Info("booking created",
		zap.String("booking_id", record.ID),
		zap.String("user_id", userID),
		zap.String("date", record.Date),
		zap.Int("start", record.Start))

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(record); err != nil {
			// Reminders are best effort; the booking itself stands.
			s.Logger.Warn("failed to schedule reminder",
				zap.String("booking_id", record.ID), zap.Error(err))
		}
	}
	return s.Bookings.GetByID(record.ID)
}

// GetForUser fetches one of the member's bookings.
func (s *DefaultBookingService) GetForUser(id, userID string) (*models.BookingDetail, error) {
	detail, err := s.Bookings.GetByIDForUser(id, userID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrBookingNotFound
	}
	return detail, nil
}

// ListForUser pages the member's booking history.
func (s *DefaultBookingService) ListForUser(userID, status string, page, limit int) ([]models.BookingDetail, models.Pagination, error) {
	details, total, err := s.Bookings.ListByUser(userID, status, page, limit)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return details, models.NewPagination(page, limit, total), nil
}

// Cancel cancels the member's booking when the window allows it. The
// caller supplies now so the decision is testable and consistent per
// request.
func (s *DefaultBookingService) Cancel(id, userID string, now time.Time) (*models.BookingDetail, error) {
	detail, err := s.Bookings.GetByIDForUser(id, userID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrBookingNotFound
	}
	if detail.Status != models.BookingPending && detail.Status != models.BookingConfirmed {
		return nil, ErrInvalidStatus
	}
	if !scheduling.CanCancel(now, detail.Date, scheduling.TimeOfDay(detail.Start), detail.Status) {
		return nil, ErrCancelWindowClosed
	}

	updated, err := s.Bookings.UpdateStatus(id, models.BookingCancelled)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrBookingNotFound
	}
	s.invalidateSlots(updated.Date)
	s.Logger.Info("booking cancelled",
		zap.String("booking_id", id), zap.String("user_id", userID))
	return updated, nil
}
