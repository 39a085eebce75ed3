package catalog

import "errors"

var (
	// ErrServiceNotFound means no service matches the given ID.
	ErrServiceNotFound = errors.New("service not found")

	// ErrStaffNotFound means no therapist matches the given ID.
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrInvalidService means the create or update payload failed
	// validation.
	ErrInvalidService = errors.New("invalid service data")
)
