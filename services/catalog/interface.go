package catalog

import "yungwing/models"

// ServiceUpdate carries the editable catalogue fields. Nil fields are
// left untouched.
type ServiceUpdate struct {
	Name        *string
	Description *string
	Duration    *int
	Price       *float64
	Category    *string
	IsActive    *bool
}

// CatalogService defines the treatment catalogue and therapist roster
// operations.
type CatalogService interface {
	// ListServices lists active services, optionally one category only.
	// Admin callers may include inactive services.
	ListServices(category string, includeInactive bool) ([]models.Service, error)
	GetService(id string) (*models.Service, error)
	Categories() ([]string, error)

	CreateService(svc *models.Service) (*models.Service, error)
	UpdateService(id string, update ServiceUpdate) (*models.Service, error)

	// DeleteService removes a service from the catalogue. Services with
	// existing bookings are deactivated instead so history stays intact.
	DeleteService(id string) error

	ListStaff() ([]models.Staff, error)
	GetStaff(id string) (*models.Staff, error)

	// StaffServices lists the active services matching a therapist's
	// specialties.
	StaffServices(staffID string) ([]models.Service, error)
}
