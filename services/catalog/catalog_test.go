package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogRepo "yungwing/database/repository/catalog"
	"yungwing/models"
)

type fakeCatalogRepo struct {
	services map[string]*models.Service
	staff    map[string]*models.Staff
	byCats   []models.Service
	deleted  []string
	updates  map[string]map[string]interface{}
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		services: map[string]*models.Service{},
		staff:    map[string]*models.Staff{},
		updates:  map[string]map[string]interface{}{},
	}
}

func (f *fakeCatalogRepo) ListServices(category string, active catalogRepo.ActiveFilter) ([]models.Service, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) GetServiceByID(id string) (*models.Service, error) {
	return f.services[id], nil
}

func (f *fakeCatalogRepo) ListCategories() ([]string, error) { return nil, nil }

func (f *fakeCatalogRepo) ListServicesByCategories(categories []string) ([]models.Service, error) {
	return f.byCats, nil
}

func (f *fakeCatalogRepo) CreateService(service *models.Service) error {
	f.services[service.ID] = service
	return nil
}

func (f *fakeCatalogRepo) UpdateService(id string, doc map[string]interface{}) (*models.Service, error) {
	svc := f.services[id]
	if svc == nil {
		return nil, nil
	}
	f.updates[id] = doc
	if active, ok := doc["is_active"].(bool); ok {
		svc.IsActive = active
	}
	return svc, nil
}

func (f *fakeCatalogRepo) DeleteService(id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.services, id)
	return nil
}

func (f *fakeCatalogRepo) ListStaff(active catalogRepo.ActiveFilter) ([]models.Staff, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) GetStaffByID(id string) (*models.Staff, error) {
	return f.staff[id], nil
}

type fakeBookingCounts struct {
	byService map[string]int64
}

func (f *fakeBookingCounts) CreateIfNoConflict(ctx context.Context, b *models.Booking) error {
	return nil
}
func (f *fakeBookingCounts) GetByID(id string) (*models.BookingDetail, error) { return nil, nil }
func (f *fakeBookingCounts) GetByIDForUser(id, userID string) (*models.BookingDetail, error) {
	return nil, nil
}
func (f *fakeBookingCounts) ListActiveByDate(date string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingCounts) ListByUser(u, s string, p, l int) ([]models.BookingDetail, int64, error) {
	return nil, 0, nil
}
func (f *fakeBookingCounts) List(s, d string, p, l int) ([]models.BookingDetail, int64, error) {
	return nil, 0, nil
}
func (f *fakeBookingCounts) Recent(limit int) ([]models.BookingDetail, error) { return nil, nil }
func (f *fakeBookingCounts) UpdateStatus(id, status string) (*models.BookingDetail, error) {
	return nil, nil
}
func (f *fakeBookingCounts) CountAll() (int64, error)                   { return 0, nil }
func (f *fakeBookingCounts) CountByStatus(s string) (int64, error)      { return 0, nil }
func (f *fakeBookingCounts) CountByDate(d string) (int64, error)        { return 0, nil }
func (f *fakeBookingCounts) CountByUser(u string) (int64, error)        { return 0, nil }
func (f *fakeBookingCounts) CountByUserAndStatus(u, s string) (int64, error) {
	return 0, nil
}
func (f *fakeBookingCounts) CompletePastConfirmed(d string, e int) (int64, error) {
	return 0, nil
}

func (f *fakeBookingCounts) CountByService(serviceID string) (int64, error) {
	return f.byService[serviceID], nil
}

func TestDeleteServiceWithoutBookings(t *testing.T) {
	repo := newFakeCatalogRepo()
	repo.services["svc-1"] = &models.Service{ID: "svc-1", Name: "Hot Stone", IsActive: true}
	svc := NewDefaultCatalogService(repo, &fakeBookingCounts{byService: map[string]int64{}})

	require.NoError(t, svc.DeleteService("svc-1"))
	assert.Equal(t, []string{"svc-1"}, repo.deleted)
}

func TestDeleteServiceWithBookingsDeactivates(t *testing.T) {
	repo := newFakeCatalogRepo()
	repo.services["svc-1"] = &models.Service{ID: "svc-1", Name: "Hot Stone", IsActive: true}
	bookings := &fakeBookingCounts{byService: map[string]int64{"svc-1": 7}}
	svc := NewDefaultCatalogService(repo, bookings)

	require.NoError(t, svc.DeleteService("svc-1"))
	assert.Empty(t, repo.deleted, "services with bookings must not be hard-deleted")
	assert.False(t, repo.services["svc-1"].IsActive)
}

func TestDeleteServiceNotFound(t *testing.T) {
	svc := NewDefaultCatalogService(newFakeCatalogRepo(), &fakeBookingCounts{byService: map[string]int64{}})
	assert.ErrorIs(t, svc.DeleteService("missing"), ErrServiceNotFound)
}

func TestCreateServiceValidation(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := NewDefaultCatalogService(repo, &fakeBookingCounts{byService: map[string]int64{}})

	_, err := svc.CreateService(&models.Service{Name: "", Duration: 60, Price: 1000})
	assert.ErrorIs(t, err, ErrInvalidService)

	_, err = svc.CreateService(&models.Service{Name: "Foot Massage", Duration: 0, Price: 800})
	assert.ErrorIs(t, err, ErrInvalidService)

	created, err := svc.CreateService(&models.Service{Name: "Foot Massage", Duration: 40, Price: 800})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
}

func TestStaffServices(t *testing.T) {
	repo := newFakeCatalogRepo()
	repo.staff["st-1"] = &models.Staff{ID: "st-1", Specialties: []string{"massage"}, IsActive: true}
	repo.staff["st-2"] = &models.Staff{ID: "st-2", IsActive: true}
	repo.byCats = []models.Service{{ID: "svc-1", Category: "massage"}}
	svc := NewDefaultCatalogService(repo, &fakeBookingCounts{byService: map[string]int64{}})

	services, err := svc.StaffServices("st-1")
	require.NoError(t, err)
	assert.Len(t, services, 1)

	services, err = svc.StaffServices("st-2")
	require.NoError(t, err)
	assert.Empty(t, services, "no specialties means no matched services")

	_, err = svc.StaffServices("missing")
	assert.ErrorIs(t, err, ErrStaffNotFound)
}
