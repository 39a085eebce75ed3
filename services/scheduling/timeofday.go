package scheduling

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay bounds every TimeOfDay value.
const MinutesPerDay = 24 * 60

// TimeOfDay is a point within a single day, in minutes since midnight.
// Valid values are 0 <= t < 1440. Integer minutes keep duration
// arithmetic and overlap tests exact; the "HH:MM" strings the clients
// speak are parsed at the edges only.
type TimeOfDay int

// ParseTimeOfDay parses a zero-padded "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return TimeOfDay(h*60 + m), nil
}

// String renders the time as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Valid reports whether t lies within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

// Interval is a half-open time window [Start, End) within one day.
// Half-open so that back-to-back bookings never falsely overlap.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Overlaps reports whether the two half-open intervals intersect.
// An interval ending exactly where the other starts does not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// Valid reports whether the interval is well formed.
func (iv Interval) Valid() bool {
	return iv.Start.Valid() && iv.End > iv.Start && iv.End <= MinutesPerDay
}
