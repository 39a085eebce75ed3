package models

import "time"

// Payment methods accepted at the studio.
const (
	PayCash     = "CASH"
	PayCard     = "CARD"
	PayLinePay  = "LINE_PAY"
	PayTransfer = "TRANSFER"
)

// Payment statuses.
const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentRefunded  = "REFUNDED"
)

// ValidPaymentMethods lists the accepted payment methods.
var ValidPaymentMethods = []string{PayCash, PayCard, PayLinePay, PayTransfer}

// Payment is a settled (or pending) charge against a booking.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"booking_id" json:"bookingId"`
	UserID        string    `bson:"user_id" json:"userId"`
	Amount        float64   `bson:"amount" json:"amount"`
	Method        string    `bson:"method" json:"method"`
	Status        string    `bson:"status" json:"status"`
	TransactionID string    `bson:"transaction_id,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// PaymentDetail joins a payment with its booking for history views.
type PaymentDetail struct {
	Payment `bson:",inline"`
	Booking *BookingDetail `bson:"booking,omitempty" json:"booking,omitempty"`
}

// DailyRevenue is one bucket of the admin revenue report.
type DailyRevenue struct {
	Date   string  `bson:"_id" json:"date"`
	Amount float64 `bson:"amount" json:"amount"`
	Count  int64   `bson:"count" json:"count"`
}

// RevenueReport aggregates completed payments over a period.
type RevenueReport struct {
	TotalRevenue      float64        `json:"totalRevenue"`
	TotalTransactions int64          `json:"totalTransactions"`
	DailyRevenue      []DailyRevenue `json:"dailyRevenue"`
}
