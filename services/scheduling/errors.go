package scheduling

import "errors"

var (
	// ErrSlotConflict means the proposed interval overlaps an active booking.
	ErrSlotConflict = errors.New("requested slot overlaps an existing booking")

	// ErrInvalidTimeRange means the requested start plus duration runs
	// past midnight. Appointments never wrap across days.
	ErrInvalidTimeRange = errors.New("booking end time crosses midnight")
)
