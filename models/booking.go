package models

import "time"

// Booking statuses. PENDING, CONFIRMED and IN_PROGRESS occupy time and
// block new slots; the rest do not.
const (
	BookingPending    = "PENDING"
	BookingConfirmed  = "CONFIRMED"
	BookingInProgress = "IN_PROGRESS"
	BookingCompleted  = "COMPLETED"
	BookingCancelled  = "CANCELLED"
	BookingNoShow     = "NO_SHOW"
)

// BlockingStatuses are the statuses that occupy a time interval.
var BlockingStatuses = []string{BookingPending, BookingConfirmed, BookingInProgress}

// ValidStatuses lists every status an admin may set.
var ValidStatuses = []string{
	BookingPending, BookingConfirmed, BookingInProgress,
	BookingCompleted, BookingCancelled, BookingNoShow,
}

// Booking represents an appointment record.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	ServiceID string    `bson:"service_id" json:"serviceId"`
	StaffID   string    `bson:"staff_id,omitempty" json:"staffId,omitempty"`
	Date      string    `bson:"date" json:"date"`   // "YYYY-MM-DD"
	Start     int       `bson:"start" json:"start"` // minutes from midnight
	End       int       `bson:"end" json:"end"`     // minutes from midnight, exclusive
	Status    string    `bson:"status" json:"status"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// BookingDetail is a booking joined with its service and staff for
// list and detail responses.
type BookingDetail struct {
	Booking `bson:",inline"`
	Service *Service `bson:"service,omitempty" json:"service,omitempty"`
	Staff   *Staff   `bson:"staff,omitempty" json:"staff,omitempty"`
	User    *User    `bson:"user,omitempty" json:"user,omitempty"`
}

// AvailableSlot is a bookable candidate window, serialized the way the
// clients expect it.
type AvailableSlot struct {
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
	Duration  int    `json:"duration"`  // minutes
}
