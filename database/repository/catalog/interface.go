package catalogRepo

import "yungwing/models"

// ActiveFilter selects by the is_active flag in listings.
type ActiveFilter int

const (
	ActiveOnly ActiveFilter = iota
	InactiveOnly
	ActiveAll
)

// CatalogRepository defines persistence for the service catalogue and
// the therapist roster.
type CatalogRepository interface {
	ListServices(category string, active ActiveFilter) ([]models.Service, error)
	GetServiceByID(id string) (*models.Service, error)
	ListCategories() ([]string, error)
	ListServicesByCategories(categories []string) ([]models.Service, error)
	CreateService(service *models.Service) error
	UpdateService(id string, updateDoc map[string]interface{}) (*models.Service, error)
	DeleteService(id string) error

	ListStaff(active ActiveFilter) ([]models.Staff, error)
	GetStaffByID(id string) (*models.Staff, error)
}
