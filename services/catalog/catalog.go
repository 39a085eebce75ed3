package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "yungwing/database/repository/booking"
	catalogRepo "yungwing/database/repository/catalog"
	"yungwing/models"
	"yungwing/utils"
)

// DefaultCatalogService is the production implementation of CatalogService.
type DefaultCatalogService struct {
	Repo     catalogRepo.CatalogRepository
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

// NewDefaultCatalogService constructs the service with its dependencies.
func NewDefaultCatalogService(repo catalogRepo.CatalogRepository, bookings bookingRepo.BookingRepository) *DefaultCatalogService {
	return &DefaultCatalogService{
		Repo:     repo,
		Bookings: bookings,
		Logger:   utils.GetLogger().Named("catalog"),
	}
}

// ListServices lists services, optionally filtered to one category.
func (s *DefaultCatalogService) ListServices(category string, includeInactive bool) ([]models.Service, error) {
	filter := catalogRepo.ActiveOnly
	if includeInactive {
		filter = catalogRepo.ActiveAll
	}
	return s.Repo.ListServices(category, filter)
}

// GetService fetches one service.
func (s *DefaultCatalogService) GetService(id string) (*models.Service, error) {
	svc, err := s.Repo.GetServiceByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

// Categories lists the distinct service categories.
func (s *DefaultCatalogService) Categories() ([]string, error) {
	return s.Repo.ListCategories()
}

func validateService(name string, duration int, price float64) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidService)
	}
	if duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidService)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidService)
	}
	return nil
}

// CreateService adds a treatment to the catalogue.
func (s *DefaultCatalogService) CreateService(svc *models.Service) (*models.Service, error) {
	if err := validateService(svc.Name, svc.Duration, svc.Price); err != nil {
		return nil, err
	}
	now := time.Now()
	svc.ID = uuid.NewString()
	svc.IsActive = true
	svc.CreatedAt = now
	svc.UpdatedAt = now
	if err := s.Repo.CreateService(svc); err != nil {
		return nil, err
	}
	s.Logger.Info("service created", zap.String("service_id", svc.ID), zap.String("name", svc.Name))
	return svc, nil
}

// UpdateService applies the supplied fields and returns the updated
// record.
func (s *DefaultCatalogService) UpdateService(id string, update ServiceUpdate) (*models.Service, error) {
	doc := map[string]interface{}{"updated_at": time.Now()}
	if update.Name != nil {
		if *update.Name == "" {
			return nil, fmt.Errorf("%w: name is required", ErrInvalidService)
		}
		doc["name"] = *update.Name
	}
	if update.Description != nil {
		doc["description"] = *update.Description
	}
	if update.Duration != nil {
		if *update.Duration <= 0 {
			return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidService)
		}
		doc["duration"] = *update.Duration
	}
	if update.Price != nil {
		if *update.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidService)
		}
		doc["price"] = *update.Price
	}
	if update.Category != nil {
		doc["category"] = *update.Category
	}
	if update.IsActive != nil {
		doc["is_active"] = *update.IsActive
	}

	svc, err := s.Repo.UpdateService(id, doc)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

// DeleteService removes a service, or deactivates it when bookings
// reference it so that history keeps resolving.
func (s *DefaultCatalogService) DeleteService(id string) error {
	svc, err := s.Repo.GetServiceByID(id)
	if err != nil {
		return err
	}
	if svc == nil {
		return ErrServiceNotFound
	}

	count, err := s.Bookings.CountByService(id)
	if err != nil {
		return err
	}
	if count > 0 {
		_, err := s.Repo.UpdateService(id, map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		})
		if err != nil {
			return err
		}
		s.Logger.Info("service deactivated instead of deleted",
			zap.String("service_id", id), zap.Int64("bookings", count))
		return nil
	}
	if err := s.Repo.DeleteService(id); err != nil {
		return err
	}
	s.Logger.Info("service deleted", zap.String("service_id", id))
	return nil
}

// ListStaff lists the active therapists.
func (s *DefaultCatalogService) ListStaff() ([]models.Staff, error) {
	return s.Repo.ListStaff(catalogRepo.ActiveOnly)
}

// GetStaff fetches one therapist.
func (s *DefaultCatalogService) GetStaff(id string) (*models.Staff, error) {
	staff, err := s.Repo.GetStaffByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}
	return staff, nil
}

// StaffServices lists the active services matching a therapist's
// specialties.
func (s *DefaultCatalogService) StaffServices(staffID string) ([]models.Service, error) {
	staff, err := s.GetStaff(staffID)
	if err != nil {
		return nil, err
	}
	if len(staff.Specialties) == 0 {
		return []models.Service{}, nil
	}
	return s.Repo.ListServicesByCategories(staff.Specialties)
}
