package payment

import "errors"

var (
	// ErrBookingNotFound means the booking does not exist or belongs to
	// another member.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidMethod means the payment method is not accepted.
	ErrInvalidMethod = errors.New("invalid payment method")

	// ErrInvalidAmount means the amount is not positive.
	ErrInvalidAmount = errors.New("payment amount must be positive")

	// ErrPaymentNotFound means no payment matches the given ID for the
	// member.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrBookingNotPayable means the booking's status does not admit a
	// payment (it was cancelled or marked a no-show).
	ErrBookingNotPayable = errors.New("booking cannot be paid in its current status")
)
