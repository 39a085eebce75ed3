package models

import "time"

// Points history entry types.
const (
	PointsEarned   = "EARNED"
	PointsRedeemed = "REDEEMED"
	PointsExpired  = "EXPIRED"
)

// PointsEntry records a change to a member's loyalty balance.
type PointsEntry struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"userId"`
	Points      int       `bson:"points" json:"points"`
	Type        string    `bson:"type" json:"type"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	BookingID   string    `bson:"booking_id,omitempty" json:"bookingId,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
