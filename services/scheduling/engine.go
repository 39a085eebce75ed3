// Package scheduling holds the slot generation and conflict detection
// engine. Every function here is pure: bookings come in as data, the
// clock comes in as a parameter, and nothing touches a store. The
// booking repository re-runs ValidateNoConflict inside its insert
// transaction, so the engine's answers stay correct under concurrent
// booking attempts without any locking of its own.
package scheduling

import (
	"sort"
	"time"

	"yungwing/models"
)

// Options configures the slot generator.
type Options struct {
	BusinessOpen  TimeOfDay // opening time, minutes from midnight
	BusinessClose TimeOfDay // closing time, minutes from midnight
	SlotStep      int       // candidate start granularity, minutes
}

// DefaultOptions returns the studio defaults: 09:00-21:00, 30-minute steps.
func DefaultOptions() Options {
	return Options{
		BusinessOpen:  9 * 60,
		BusinessClose: 21 * 60,
		SlotStep:      30,
	}
}

// Slot is a candidate appointment window of a fixed duration.
type Slot struct {
	Interval Interval
	Duration int
}

// GenerateAvailableSlots enumerates every candidate start time within
// business hours at SlotStep granularity and keeps the ones whose
// window does not overlap any existing blocking interval. Results are
// in ascending start order. A non-positive duration yields no slots
// rather than an error: no valid slot can exist.
func GenerateAvailableSlots(durationMinutes int, existing []Interval, opts Options) []Slot {
	slots := []Slot{}
	if durationMinutes <= 0 || opts.SlotStep <= 0 {
		return slots
	}

	for start := opts.BusinessOpen; start+TimeOfDay(durationMinutes) <= opts.BusinessClose; start += TimeOfDay(opts.SlotStep) {
		candidate := Interval{Start: start, End: start + TimeOfDay(durationMinutes)}
		if conflictsAny(candidate, existing) {
			continue
		}
		slots = append(slots, Slot{Interval: candidate, Duration: durationMinutes})
	}
	return slots
}

// ValidateNoConflict decides whether the proposed interval may be
// booked given the blocking bookings of the same date. It must be
// re-run inside the same store transaction as the insert; see the
// booking repository.
func ValidateNoConflict(proposed Interval, existing []Interval) error {
	if conflictsAny(proposed, existing) {
		return ErrSlotConflict
	}
	return nil
}

func conflictsAny(candidate Interval, existing []Interval) bool {
	for _, iv := range existing {
		if candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}

// DeriveEnd computes a booking's end time from its start and service
// duration. Ends at or past midnight are rejected instead of wrapping.
func DeriveEnd(start TimeOfDay, durationMinutes int) (TimeOfDay, error) {
	end := start + TimeOfDay(durationMinutes)
	if end >= MinutesPerDay {
		return 0, ErrInvalidTimeRange
	}
	return end, nil
}

// CancelWindow is how long before the appointment a member may still
// cancel.
const CancelWindow = 2 * time.Hour

// CanCancel reports whether a booking may still be cancelled at the
// supplied instant. Only pending and confirmed bookings are
// cancellable, and only up to CancelWindow before the start. The
// boundary is inclusive: exactly two hours out still cancels.
func CanCancel(now time.Time, date string, start TimeOfDay, status string) bool {
	if status != models.BookingPending && status != models.BookingConfirmed {
		return false
	}
	day, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return false
	}
	bookingAt := day.Add(time.Duration(start) * time.Minute)
	return bookingAt.Sub(now) >= CancelWindow
}

// BlockingIntervals extracts the occupied windows from bookings,
// keeping only blocking statuses. Order is normalized so callers get
// deterministic output regardless of store ordering.
func BlockingIntervals(bookings []models.Booking) []Interval {
	intervals := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		if !isBlocking(b.Status) {
			continue
		}
		intervals = append(intervals, Interval{Start: TimeOfDay(b.Start), End: TimeOfDay(b.End)})
	}
	sort.Slice(intervals, func(i, j int) bool {
		if intervals[i].Start == intervals[j].Start {
			return intervals[i].End < intervals[j].End
		}
		return intervals[i].Start < intervals[j].Start
	})
	return intervals
}

func isBlocking(status string) bool {
	for _, s := range models.BlockingStatuses {
		if status == s {
			return true
		}
	}
	return false
}
