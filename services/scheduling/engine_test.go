package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yungwing/models"
)

func mustTime(t *testing.T, s string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func iv(t *testing.T, start, end string) Interval {
	t.Helper()
	return Interval{Start: mustTime(t, start), End: mustTime(t, end)}
}

func starts(slots []Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Interval.Start.String())
	}
	return out
}

func TestGenerateAvailableSlotsExcludesOverlaps(t *testing.T) {
	// 09:00-21:00, 30-minute steps, 60-minute service, one booking
	// 10:00-11:00: candidates 09:30, 10:00 and 10:30 all overlap it,
	// while 09:00 and 11:00 survive.
	existing := []Interval{iv(t, "10:00", "11:00")}
	slots := GenerateAvailableSlots(60, existing, DefaultOptions())

	got := starts(slots)
	assert.Contains(t, got, "09:00")
	assert.Contains(t, got, "11:00")
	assert.NotContains(t, got, "09:30")
	assert.NotContains(t, got, "10:00")
	assert.NotContains(t, got, "10:30")

	for _, s := range slots {
		for _, e := range existing {
			assert.Falsef(t, s.Interval.Overlaps(e), "slot %s overlaps booking %s-%s",
				s.Interval.Start, e.Start, e.End)
		}
	}
}

func TestGenerateAvailableSlotsRespectsClosingTime(t *testing.T) {
	slots := GenerateAvailableSlots(60, nil, DefaultOptions())
	require.NotEmpty(t, slots)

	last := slots[len(slots)-1]
	assert.Equal(t, "20:00", last.Interval.Start.String())
	assert.Equal(t, "21:00", last.Interval.End.String())
}

func TestGenerateAvailableSlotsOrderedAndDeterministic(t *testing.T) {
	existing := []Interval{
		iv(t, "13:00", "14:30"),
		iv(t, "09:30", "10:15"),
	}
	first := GenerateAvailableSlots(45, existing, DefaultOptions())
	second := GenerateAvailableSlots(45, existing, DefaultOptions())
	assert.Equal(t, first, second)

	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1].Interval.Start, first[i].Interval.Start)
	}
}

func TestGenerateAvailableSlotsBoundaryAdjacency(t *testing.T) {
	// A booking ending exactly at 10:00 must not block a slot starting
	// at 10:00: the intervals are half-open.
	existing := []Interval{iv(t, "09:00", "10:00")}
	slots := GenerateAvailableSlots(60, existing, DefaultOptions())
	assert.Contains(t, starts(slots), "10:00")
	assert.NotContains(t, starts(slots), "09:30")
}

func TestGenerateAvailableSlotsFullDaySaturation(t *testing.T) {
	existing := []Interval{iv(t, "09:00", "21:00")}
	slots := GenerateAvailableSlots(30, existing, DefaultOptions())
	assert.Empty(t, slots)
}

func TestGenerateAvailableSlotsNonPositiveDuration(t *testing.T) {
	assert.Empty(t, GenerateAvailableSlots(0, nil, DefaultOptions()))
	assert.Empty(t, GenerateAvailableSlots(-15, nil, DefaultOptions()))
}

func TestGenerateAvailableSlotsCustomWindow(t *testing.T) {
	opts := Options{BusinessOpen: 8 * 60, BusinessClose: 12 * 60, SlotStep: 60}
	slots := GenerateAvailableSlots(120, nil, opts)
	assert.Equal(t, []string{"08:00", "09:00", "10:00"}, starts(slots))
}

func TestValidateNoConflict(t *testing.T) {
	existing := []Interval{iv(t, "10:30", "11:30")}

	// 10:00-11:00 vs 10:30-11:30: 10:00 < 11:30 and 10:30 < 11:00.
	err := ValidateNoConflict(iv(t, "10:00", "11:00"), existing)
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Touching at the boundary is fine.
	assert.NoError(t, ValidateNoConflict(iv(t, "09:30", "10:30"), existing))
	assert.NoError(t, ValidateNoConflict(iv(t, "11:30", "12:30"), existing))

	// Full containment conflicts both ways.
	assert.ErrorIs(t, ValidateNoConflict(iv(t, "10:45", "11:00"), existing), ErrSlotConflict)
	assert.ErrorIs(t, ValidateNoConflict(iv(t, "10:00", "12:00"), existing), ErrSlotConflict)
}

func TestOverlapIsSymmetric(t *testing.T) {
	pairs := [][2]Interval{
		{iv(t, "10:00", "11:00"), iv(t, "10:30", "11:30")},
		{iv(t, "09:00", "10:00"), iv(t, "10:00", "11:00")},
		{iv(t, "09:00", "12:00"), iv(t, "10:00", "11:00")},
		{iv(t, "09:00", "09:30"), iv(t, "15:00", "16:00")},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		rejectedAB := ValidateNoConflict(a, []Interval{b}) != nil
		rejectedBA := ValidateNoConflict(b, []Interval{a}) != nil
		assert.Equalf(t, rejectedAB, rejectedBA, "asymmetric overlap for %v / %v", a, b)
	}
}

func TestDeriveEnd(t *testing.T) {
	end, err := DeriveEnd(mustTime(t, "10:00"), 90)
	require.NoError(t, err)
	assert.Equal(t, "11:30", end.String())

	// 23:30 + 60 minutes crosses midnight.
	_, err = DeriveEnd(mustTime(t, "23:30"), 60)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	// Ending exactly at midnight is also out: 1440 is not a valid
	// time-of-day.
	_, err = DeriveEnd(mustTime(t, "23:00"), 60)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCanCancel(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, loc)

	cases := []struct {
		name   string
		date   string
		start  string
		status string
		want   bool
	}{
		{"confirmed, exactly 2h out", "2025-06-10", "14:00", models.BookingConfirmed, true},
		{"confirmed, 1h59m out", "2025-06-10", "13:59", models.BookingConfirmed, false},
		{"pending, next day", "2025-06-11", "09:00", models.BookingPending, true},
		{"in progress never cancellable", "2025-06-11", "09:00", models.BookingInProgress, false},
		{"completed never cancellable", "2025-06-11", "09:00", models.BookingCompleted, false},
		{"already past", "2025-06-10", "09:00", models.BookingConfirmed, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CanCancel(now, tc.date, mustTime(t, tc.start), tc.status)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBlockingIntervals(t *testing.T) {
	bookings := []models.Booking{
		{Start: 14 * 60, End: 15 * 60, Status: models.BookingConfirmed},
		{Start: 9 * 60, End: 10 * 60, Status: models.BookingPending},
		{Start: 10 * 60, End: 11 * 60, Status: models.BookingCancelled},
		{Start: 11 * 60, End: 12 * 60, Status: models.BookingCompleted},
		{Start: 12 * 60, End: 13 * 60, Status: models.BookingInProgress},
	}
	got := BlockingIntervals(bookings)
	require.Len(t, got, 3)
	// Sorted, and only the blocking statuses survive.
	assert.Equal(t, TimeOfDay(9*60), got[0].Start)
	assert.Equal(t, TimeOfDay(12*60), got[1].Start)
	assert.Equal(t, TimeOfDay(14*60), got[2].Start)
}
