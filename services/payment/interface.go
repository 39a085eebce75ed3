package payment

import "yungwing/models"

// RecordRequest carries a charge against a booking. A zero amount means
// "charge the service's list price".
type RecordRequest struct {
	BookingID string
	Method    string
	Amount    float64
}

// PaymentService defines payment recording and history operations.
type PaymentService interface {
	// Record settles a charge for one of the member's bookings. Card
	// payments go through Stripe; the other methods are settled at the
	// counter and recorded directly. Completed payments accrue loyalty
	// points and may raise the member's level.
	Record(userID string, req RecordRequest) (*models.Payment, error)

	GetForUser(id, userID string) (*models.PaymentDetail, error)
	ListForUser(userID, status string, page, limit int) ([]models.PaymentDetail, models.Pagination, error)
}
