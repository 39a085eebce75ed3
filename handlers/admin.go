package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	adminSvc "yungwing/services/admin"
)

func adminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, adminSvc.ErrBookingNotFound),
		errors.Is(err, adminSvc.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, adminSvc.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// AdminDashboardHandler returns the back-office headline numbers.
func AdminDashboardHandler(svc adminSvc.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Dashboard()
		if err != nil {
			adminError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// AdminRevenueHandler reports completed payments over a date range.
func AdminRevenueHandler(svc adminSvc.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := svc.Revenue(c.Query("startDate"), c.Query("endDate"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, report)
	}
}

// AdminListUsersHandler pages the member roster.
func AdminListUsersHandler(svc adminSvc.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		users, pagination, err := svc.ListUsers(c.Query("search"), c.Query("memberLevel"), page, limit)
		if err != nil {
			adminError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users, "pagination": pagination})
	}
}

// AdminGetUserHandler fetches one member.
func AdminGetUserHandler(svc adminSvc.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := svc.GetUser(c.Param("id"))
		if err != nil {
			adminError(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// AdminSetUserActiveHandler enables or disables a member account.
func AdminSetUserActiveHandler(svc adminSvc.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			IsActive *bool `json:"isActive" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		u, err := svc.SetUserActive(c.Param("id"), *input.IsActive)
		if err != nil {
			adminError(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// AdminListBookingsHandler pages every booking.
func AdminListBookingsHandler(svc adminSvc.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		details, pagination, err := svc.ListBookings(c.Query("status"), c.Query("date"), page, limit)
		if err != nil {
			adminError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": details, "pagination": pagination})
	}
}

// AdminSetBookingHandler sets any valid status on any booking.
func AdminSetBookingHandler(svc adminSvc.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		detail, err := svc.UpdateBookingStatus(c.Param("id"), input.Status)
		if err != nil {
			adminError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}
