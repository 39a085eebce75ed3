package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	bookingSvc "yungwing/services/booking"
	"yungwing/services/scheduling"
)

func bookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduling.ErrSlotConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot unavailable"})
	case errors.Is(err, scheduling.ErrInvalidTimeRange),
		errors.Is(err, bookingSvc.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, bookingSvc.ErrServiceUnavailable),
		errors.Is(err, bookingSvc.ErrStaffUnavailable),
		errors.Is(err, bookingSvc.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, bookingSvc.ErrCancelWindowClosed),
		errors.Is(err, bookingSvc.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// AvailableSlotsHandler lists the open windows for a service on a date.
func AvailableSlotsHandler(svc bookingSvc.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		serviceID := c.Query("serviceId")
		date := c.Query("date")
		if serviceID == "" || date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "serviceId and date are required"})
			return
		}

		slots, err := svc.AvailableSlots(serviceID, date)
		if err != nil {
			bookingError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
	}
}

// CreateBookingHandler books a slot for the authenticated member.
func CreateBookingHandler(svc bookingSvc.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ServiceID string `json:"serviceId" binding:"required"`
			StaffID   string `json:"staffId"`
			Date      string `json:"date" binding:"required"`
			StartTime string `json:"startTime" binding:"required"`
			Notes     string `json:"notes"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		detail, err := svc.Create(c.Request.Context(), currentUserID(c), bookingSvc.CreateRequest{
			ServiceID: input.ServiceID,
			StaffID:   input.StaffID,
			Date:      input.Date,
			StartTime: input.StartTime,
			Notes:     input.Notes,
		})
		if err != nil {
			bookingError(c, err)
			return
		}
		c.JSON(http.StatusCreated, detail)
	}
}

// ListBookingsHandler pages the member's booking history.
func ListBookingsHandler(svc bookingSvc.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		details, pagination, err := svc.ListForUser(currentUserID(c), c.Query("status"), page, limit)
		if err != nil {
			bookingError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": details, "pagination": pagination})
	}
}

// GetBookingHandler fetches one of the member's bookings.
func GetBookingHandler(svc bookingSvc.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.GetForUser(c.Param("id"), currentUserID(c))
		if err != nil {
			bookingError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

// CancelBookingHandler cancels one of the member's bookings.
func CancelBookingHandler(svc bookingSvc.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.Cancel(c.Param("id"), currentUserID(c), time.Now())
		if err != nil {
			bookingError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}
