package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	paymentSvc "yungwing/services/payment"
)

func paymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, paymentSvc.ErrBookingNotFound),
		errors.Is(err, paymentSvc.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, paymentSvc.ErrInvalidMethod),
		errors.Is(err, paymentSvc.ErrInvalidAmount),
		errors.Is(err, paymentSvc.ErrBookingNotPayable):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// CreatePaymentHandler settles a charge for one of the member's
// bookings.
func CreatePaymentHandler(svc paymentSvc.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			BookingID string  `json:"bookingId" binding:"required"`
			Method    string  `json:"method" binding:"required"`
			Amount    float64 `json:"amount"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		payment, err := svc.Record(currentUserID(c), paymentSvc.RecordRequest{
			BookingID: input.BookingID,
			Method:    input.Method,
			Amount:    input.Amount,
		})
		if err != nil {
			paymentError(c, err)
			return
		}
		c.JSON(http.StatusCreated, payment)
	}
}

// ListPaymentsHandler pages the member's payment history.
func ListPaymentsHandler(svc paymentSvc.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		details, pagination, err := svc.ListForUser(currentUserID(c), c.Query("status"), page, limit)
		if err != nil {
			paymentError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"payments": details, "pagination": pagination})
	}
}

// GetPaymentHandler fetches one of the member's payments.
func GetPaymentHandler(svc paymentSvc.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.GetForUser(c.Param("id"), currentUserID(c))
		if err != nil {
			paymentError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}
