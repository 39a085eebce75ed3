package booking

import "errors"

var (
	// ErrServiceUnavailable means the requested service does not exist
	// or has been deactivated.
	ErrServiceUnavailable = errors.New("service not found or inactive")

	// ErrStaffUnavailable means the requested therapist does not exist
	// or is no longer active.
	ErrStaffUnavailable = errors.New("staff member not found or inactive")

	// ErrBookingNotFound means no matching booking exists for the user.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCancelWindowClosed means the booking starts too soon to cancel.
	ErrCancelWindowClosed = errors.New("bookings cannot be cancelled within 2 hours of the start time")

	// ErrInvalidStatus means an unknown booking status was supplied.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate means the date is not a valid YYYY-MM-DD value.
	ErrInvalidDate = errors.New("invalid booking date")
)
