package bookingRepo

import (
	"context"

	"yungwing/models"
)

// BookingRepository defines persistence for appointment records.
type BookingRepository interface {
	// CreateIfNoConflict inserts the booking inside a transaction that
	// re-checks overlap against active bookings on the same date. It
	// returns scheduling.ErrSlotConflict when the slot was taken in
	// the meantime.
	CreateIfNoConflict(ctx context.Context, booking *models.Booking) error

	GetByID(id string) (*models.BookingDetail, error)
	GetByIDForUser(id, userID string) (*models.BookingDetail, error)

	// ListActiveByDate returns the blocking bookings of a single date.
	ListActiveByDate(date string) ([]models.Booking, error)

	ListByUser(userID, status string, page, limit int) ([]models.BookingDetail, int64, error)
	List(status, date string, page, limit int) ([]models.BookingDetail, int64, error)
	Recent(limit int) ([]models.BookingDetail, error)

	UpdateStatus(id, status string) (*models.BookingDetail, error)

	CountAll() (int64, error)
	CountByStatus(status string) (int64, error)
	CountByDate(date string) (int64, error)
	CountByUser(userID string) (int64, error)
	CountByService(serviceID string) (int64, error)
	CountByUserAndStatus(userID, status string) (int64, error)

	// CompletePastConfirmed flips confirmed bookings whose end instant
	// lies before the cutoff to COMPLETED. Used by the sweep worker.
	CompletePastConfirmed(date string, endBefore int) (int64, error)
}
