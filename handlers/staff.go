package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogSvc "yungwing/services/catalog"
)

// ListStaffHandler lists the active therapists.
func ListStaffHandler(svc catalogSvc.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		staff, err := svc.ListStaff()
		if err != nil {
			catalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"staff": staff})
	}
}

// GetStaffHandler fetches one therapist.
func GetStaffHandler(svc catalogSvc.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		staff, err := svc.GetStaff(c.Param("id"))
		if err != nil {
			catalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, staff)
	}
}

// StaffServicesHandler lists the services matching a therapist's
// specialties.
func StaffServicesHandler(svc catalogSvc.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		services, err := svc.StaffServices(c.Param("id"))
		if err != nil {
			catalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"services": services})
	}
}
