package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogRepo "yungwing/database/repository/catalog"
	"yungwing/models"
	"yungwing/services/scheduling"
)

type fakeBookingRepo struct {
	active   []models.Booking
	inserted []*models.Booking
	details  map[string]*models.BookingDetail
	updated  map[string]string
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		details: map[string]*models.BookingDetail{},
		updated: map[string]string{},
	}
}

func (f *fakeBookingRepo) CreateIfNoConflict(ctx context.Context, b *models.Booking) error {
	proposed := scheduling.Interval{Start: scheduling.TimeOfDay(b.Start), End: scheduling.TimeOfDay(b.End)}
	if err := scheduling.ValidateNoConflict(proposed, scheduling.BlockingIntervals(f.active)); err != nil {
		return err
	}
	f.inserted = append(f.inserted, b)
	f.details[b.ID] = &models.BookingDetail{Booking: *b}
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.BookingDetail, error) {
	return f.details[id], nil
}

func (f *fakeBookingRepo) GetByIDForUser(id, userID string) (*models.BookingDetail, error) {
	d := f.details[id]
	if d == nil || d.UserID != userID {
		return nil, nil
	}
	return d, nil
}

func (f *fakeBookingRepo) ListActiveByDate(date string) ([]models.Booking, error) {
	return f.active, nil
}

func (f *fakeBookingRepo) ListByUser(userID, status string, page, limit int) ([]models.BookingDetail, int64, error) {
	return nil, 0, nil
}

func (f *fakeBookingRepo) List(status, date string, page, limit int) ([]models.BookingDetail, int64, error) {
	return nil, 0, nil
}

func (f *fakeBookingRepo) Recent(limit int) ([]models.BookingDetail, error) { return nil, nil }

func (f *fakeBookingRepo) UpdateStatus(id, status string) (*models.BookingDetail, error) {
	d := f.details[id]
	if d == nil {
		return nil, nil
	}
	d.Status = status
	f.updated[id] = status
	return d, nil
}

func (f *fakeBookingRepo) CountAll() (int64, error)                          { return 0, nil }
func (f *fakeBookingRepo) CountByStatus(status string) (int64, error)        { return 0, nil }
func (f *fakeBookingRepo) CountByDate(date string) (int64, error)            { return 0, nil }
func (f *fakeBookingRepo) CountByUser(userID string) (int64, error)          { return 0, nil }
func (f *fakeBookingRepo) CountByService(serviceID string) (int64, error)    { return 0, nil }
func (f *fakeBookingRepo) CountByUserAndStatus(u, s string) (int64, error)   { return 0, nil }
func (f *fakeBookingRepo) CompletePastConfirmed(d string, e int) (int64, error) {
	return 0, nil
}

type fakeCatalogRepo struct {
	services map[string]*models.Service
	staff    map[string]*models.Staff
}

func (f *fakeCatalogRepo) ListServices(category string, active catalogRepo.ActiveFilter) ([]models.Service, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) GetServiceByID(id string) (*models.Service, error) {
	return f.services[id], nil
}

func (f *fakeCatalogRepo) ListCategories() ([]string, error) { return nil, nil }

func (f *fakeCatalogRepo) ListServicesByCategories(categories []string) ([]models.Service, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) CreateService(service *models.Service) error { return nil }

func (f *fakeCatalogRepo) UpdateService(id string, doc map[string]interface{}) (*models.Service, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) DeleteService(id string) error { return nil }

func (f *fakeCatalogRepo) ListStaff(active catalogRepo.ActiveFilter) ([]models.Staff, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) GetStaffByID(id string) (*models.Staff, error) {
	return f.staff[id], nil
}

func newTestService(bookings *fakeBookingRepo, catalog *fakeCatalogRepo) *DefaultBookingService {
	return NewDefaultBookingService(bookings, catalog, nil, nil)
}

func massage60() *models.Service {
	return &models.Service{ID: "svc-1", Name: "Aromatherapy Massage", Duration: 60, IsActive: true}
}

func TestAvailableSlotsExcludesOverlaps(t *testing.T) {
	bookings := newFakeBookingRepo()
	bookings.active = []models.Booking{
		{ID: "b1", Date: "2026-09-01", Start: 600, End: 660, Status: models.BookingConfirmed},
	}
	catalog := &fakeCatalogRepo{services: map[string]*models.Service{"svc-1": massage60()}}
	svc := newTestService(bookings, catalog)

	slots, err := svc.AvailableSlots("svc-1", "2026-09-01")
	require.NoError(t, err)

	starts := map[string]bool{}
	for _, slot := range slots {
		starts[slot.StartTime] = true
		assert.Equal(t, 60, slot.Duration)
	}
	assert.True(t, starts["09:00"])
	assert.False(t, starts["09:30"], "09:30-10:30 overlaps the 10:00 booking")
	assert.False(t, starts["10:00"])
	assert.False(t, starts["10:30"])
	assert.True(t, starts["11:00"])
}

func TestAvailableSlotsServiceChecks(t *testing.T) {
	bookings := newFakeBookingRepo()
	inactive := massage60()
	inactive.IsActive = false
	catalog := &fakeCatalogRepo{services: map[string]*models.Service{"svc-1": inactive}}
	svc := newTestService(bookings, catalog)

	_, err := svc.AvailableSlots("svc-1", "2026-09-01")
	assert.ErrorIs(t, err, ErrServiceUnavailable)

	_, err = svc.AvailableSlots("missing", "2026-09-01")
	assert.ErrorIs(t, err, ErrServiceUnavailable)

	_, err = svc.AvailableSlots("svc-1", "not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateBooking(t *testing.T) {
	bookings := newFakeBookingRepo()
	catalog := &fakeCatalogRepo{services: map[string]*models.Service{"svc-1": massage60()}}
	svc := newTestService(bookings, catalog)

	detail, err := svc.Create(context.Background(), "user-1", CreateRequest{
		ServiceID: "svc-1",
		Date:      "2026-09-01",
		StartTime: "14:00",
	})
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, models.BookingPending, detail.Status)
	assert.Equal(t, 14*60, detail.Start)
	assert.Equal(t, 15*60, detail.End, "end is derived from the service duration")
	assert.NotEmpty(t, detail.ID)
}

func TestCreateBookingConflict(t *testing.T) {
	bookings := newFakeBookingRepo()
	bookings.active = []models.Booking{
		{ID: "b1", Date: "2026-09-01", Start: 600, End: 660, Status: models.BookingPending},
	}
	catalog := &fakeCatalogRepo{services: map[string]*models.Service{"svc-1": massage60()}}
	svc := newTestService(bookings, catalog)

	_, err := svc.Create(context.Background(), "user-1", CreateRequest{
		ServiceID: "svc-1",
		Date:      "2026-09-01",
		StartTime: "10:30",
	})
	assert.ErrorIs(t, err, scheduling.ErrSlotConflict)
}

func TestCreateBookingRejectsMidnightCrossing(t *testing.T) {
	bookings := newFakeBookingRepo()
	catalog := &fakeCatalogRepo{services: map[string]*models.Service{"svc-1": massage60()}}
	svc := newTestService(bookings, catalog)

	_, err := svc.Create(context.Background(), "user-1", CreateRequest{
		ServiceID: "svc-1",
		Date:      "2026-09-01",
		StartTime: "23:30",
	})
	assert.ErrorIs(t, err, scheduling.ErrInvalidTimeRange)
}

func TestCancelBooking(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		status  string
		start   int
		wantErr error
	}{
		{"pending outside window", models.BookingPending, 11 * 60, nil},
		{"exactly two hours out", models.BookingConfirmed, 10 * 60, nil},
		{"inside window", models.BookingPending, 9 * 60, ErrCancelWindowClosed},
		{"already completed", models.BookingCompleted, 18 * 60, ErrInvalidStatus},
		{"already cancelled", models.BookingCancelled, 18 * 60, ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := newFakeBookingRepo()
			bookings.details["b1"] = &models.BookingDetail{Booking: models.Booking{
				ID: "b1", UserID: "user-1", Date: "2026-09-01",
				Start: tt.start, End: tt.start + 60, Status: tt.status,
			}}
			svc := newTestService(bookings, &fakeCatalogRepo{})

			detail, err := svc.Cancel("b1", "user-1", now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.BookingCancelled, detail.Status)
		})
	}
}

func TestCancelBookingNotFound(t *testing.T) {
	bookings := newFakeBookingRepo()
	bookings.details["b1"] = &models.BookingDetail{Booking: models.Booking{
		ID: "b1", UserID: "someone-else", Date: "2026-09-01",
		Start: 18 * 60, End: 19 * 60, Status: models.BookingPending,
	}}
	svc := newTestService(bookings, &fakeCatalogRepo{})

	_, err := svc.Cancel("b1", "user-1", time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local))
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
