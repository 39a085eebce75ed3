package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"yungwing/models"
	catalogSvc "yungwing/services/catalog"
)

func catalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalogSvc.ErrServiceNotFound),
		errors.Is(err, catalogSvc.ErrStaffNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, catalogSvc.ErrInvalidService):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// ListServicesHandler lists the active catalogue, optionally filtered
// by category. Admins may pass ?includeInactive=true.
func ListServicesHandler(svc catalogSvc.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		includeInactive := c.Query("includeInactive") == "true" && c.GetBool("isAdmin")
		services, err := svc.ListServices(c.Query("category"), includeInactive)
		if err != nil {
			catalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"services": services})
	}
}

// GetServiceHandler fetches one service.
func GetServiceHandler(svc catalogSvc.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		service, err := svc.GetService(c.Param("id"))
		if err != nil {
			catalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, service)
	}
}

// CategoriesHandler lists the distinct service categories.
func CategoriesHandler(svc catalogSvc.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.Categories()
		if err != nil {
			catalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

// AdminCreateServiceHandler adds a treatment to the catalogue.
func AdminCreateServiceHandler(svc catalogSvc.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name        string  `json:"name" binding:"required"`
			Description string  `json:"description"`
			Duration    int     `json:"duration" binding:"required"`
			Price       float64 `json:"price" binding:"required"`
			Category    string  `json:"category"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		service, err := svc.CreateService(&models.Service{
			Name:        input.Name,
			Description: input.Description,
			Duration:    input.Duration,
			Price:       input.Price,
			Category:    input.Category,
		})
		if err != nil {
			catalogError(c, err)
			return
		}
		c.JSON(http.StatusCreated, service)
	}
}

// AdminUpdateServiceHandler applies a partial update to a service.
func AdminUpdateServiceHandler(svc catalogSvc.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name        *string  `json:"name"`
			Description *string  `json:"description"`
			Duration    *int     `json:"duration"`
			Price       *float64 `json:"price"`
			Category    *string  `json:"category"`
			IsActive    *bool    `json:"isActive"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		service, err := svc.UpdateService(c.Param("id"), catalogSvc.ServiceUpdate{
			Name:        input.Name,
			Description: input.Description,
			Duration:    input.Duration,
			Price:       input.Price,
			Category:    input.Category,
			IsActive:    input.IsActive,
		})
		if err != nil {
			catalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, service)
	}
}

// AdminDeleteServiceHandler removes (or deactivates) a service.
func AdminDeleteServiceHandler(svc catalogSvc.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteService(c.Param("id")); err != nil {
			catalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "service removed"})
	}
}
