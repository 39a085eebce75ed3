package admin

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	bookingRepo "yungwing/database/repository/booking"
	paymentRepo "yungwing/database/repository/payment"
	userRepo "yungwing/database/repository/user"
	"yungwing/models"
	"yungwing/utils"
)

var (
	// ErrInvalidStatus means an unknown booking status was supplied.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrBookingNotFound means no booking matches the given ID.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrUserNotFound means no member matches the given ID.
	ErrUserNotFound = errors.New("user not found")
)

// AdminService defines the back-office operations.
type AdminService interface {
	Dashboard() (*models.DashboardStats, error)
	Revenue(startDate, endDate string) (*models.RevenueReport, error)

	ListUsers(search, memberLevel string, page, limit int) ([]models.User, models.Pagination, error)
	GetUser(id string) (*models.User, error)
	SetUserActive(id string, active bool) (*models.User, error)

	ListBookings(status, date string, page, limit int) ([]models.BookingDetail, models.Pagination, error)

	// UpdateBookingStatus sets any valid status on any booking; the
	// member-facing cancellation window does not apply here.
	UpdateBookingStatus(id, status string) (*models.BookingDetail, error)
}

// DefaultAdminService is the production implementation of AdminService.
type DefaultAdminService struct {
	Users    userRepo.UserRepository
	Bookings bookingRepo.BookingRepository
	Payments paymentRepo.PaymentRepository
	Logger   *zap.Logger
}

// NewDefaultAdminService constructs the service with its dependencies.
func NewDefaultAdminService(users userRepo.UserRepository, bookings bookingRepo.BookingRepository, payments paymentRepo.PaymentRepository) *DefaultAdminService {
	return &DefaultAdminService{
		Users:    users,
		Bookings: bookings,
		Payments: payments,
		Logger:   utils.GetLogger().Named("admin"),
	}
}

// Dashboard gathers the headline numbers for the admin home screen.
func (s *DefaultAdminService) Dashboard() (*models.DashboardStats, error) {
	totalUsers, err := s.Users.CountAll()
	if err != nil {
		return nil, err
	}
	totalBookings, err := s.Bookings.CountAll()
	if err != nil {
		return nil, err
	}
	today, err := s.Bookings.CountByDate(time.Now().Format(utils.DateLayout))
	if err != nil {
		return nil, err
	}
	pending, err := s.Bookings.CountByStatus(models.BookingPending)
	if err != nil {
		return nil, err
	}
	revenue, err := s.Payments.SumCompleted()
	if err != nil {
		return nil, err
	}
	recent, err := s.Bookings.Recent(5)
	if err != nil {
		return nil, err
	}
	return &models.DashboardStats{
		TotalUsers:      totalUsers,
		TotalBookings:   totalBookings,
		TotalRevenue:    revenue,
		TodayBookings:   today,
		PendingBookings: pending,
		RecentBookings:  recent,
	}, nil
}

// Revenue reports completed payments over an optional date range.
func (s *DefaultAdminService) Revenue(startDate, endDate string) (*models.RevenueReport, error) {
	return s.Payments.Revenue(startDate, endDate)
}

// ListUsers pages the member roster with optional search and level
// filters.
func (s *DefaultAdminService) ListUsers(search, memberLevel string, page, limit int) ([]models.User, models.Pagination, error) {
	users, total, err := s.Users.List(search, memberLevel, page, limit)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return users, models.NewPagination(page, limit, total), nil
}

// GetUser fetches one member.
func (s *DefaultAdminService) GetUser(id string) (*models.User, error) {
	u, err := s.Users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// SetUserActive enables or disables a member account.
func (s *DefaultAdminService) SetUserActive(id string, active bool) (*models.User, error) {
	if _, err := s.GetUser(id); err != nil {
		return nil, err
	}
	if err := s.Users.UpdateSetDocument(id, bson.M{"is_active": active, "updated_at": time.Now()}); err != nil {
		return nil, err
	}
	s.Logger.Info("member active flag changed", zap.String("user_id", id), zap.Bool("active", active))
	return s.GetUser(id)
}

// ListBookings pages every booking with optional status and date
// filters.
func (s *DefaultAdminService) ListBookings(status, date string, page, limit int) ([]models.BookingDetail, models.Pagination, error) {
	details, total, err := s.Bookings.List(status, date, page, limit)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return details, models.NewPagination(page, limit, total), nil
}

// UpdateBookingStatus sets any valid status on any booking.
func (s *DefaultAdminService) UpdateBookingStatus(id, status string) (*models.BookingDetail, error) {
	valid := false
	for _, st := range models.ValidStatuses {
		if status == st {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrInvalidStatus
	}

	detail, err := s.Bookings.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrBookingNotFound
	}
	s.Logger.Info("booking status updated", zap.String("booking_id", id), zap.String("status", status))
	return detail, nil
}
