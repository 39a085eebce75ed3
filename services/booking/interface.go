package booking

import (
	"context"
	"time"

	"yungwing/models"
)

// CreateRequest carries the client's booking intent. End time is always
// derived from the service duration, never supplied.
type CreateRequest struct {
	ServiceID string
	StaffID   string
	Date      string // "YYYY-MM-DD"
	StartTime string // "HH:MM"
	Notes     string
}

// ReminderScheduler queues an appointment reminder for later delivery.
// Implemented by the cron package; kept as an interface here so the
// service layer does not depend on the task queue.
type ReminderScheduler interface {
	ScheduleReminder(booking *models.Booking) error
}

// BookingService defines the member-facing appointment operations.
type BookingService interface {
	// AvailableSlots lists the open windows for a service on a date.
	AvailableSlots(serviceID, date string) ([]models.AvailableSlot, error)

	// Create books a slot for the member, rejecting overlaps with any
	// blocking booking on the same date.
	Create(ctx context.Context, userID string, req CreateRequest) (*models.BookingDetail, error)

	GetForUser(id, userID string) (*models.BookingDetail, error)
	ListForUser(userID, status string, page, limit int) ([]models.BookingDetail, models.Pagination, error)

	// Cancel cancels the member's booking if it is still pending or
	// confirmed and starts at least two hours after now.
	Cancel(id, userID string, now time.Time) (*models.BookingDetail, error)
}
