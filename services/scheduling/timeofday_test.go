package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("09:05")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(545), got)

	got, err = ParseTimeOfDay("00:00")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(0), got)

	got, err = ParseTimeOfDay("23:59")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(1439), got)

	for _, bad := range []string{"", "9", "24:00", "12:60", "ab:cd", "-1:00"} {
		_, err := ParseTimeOfDay(bad)
		assert.Errorf(t, err, "expected parse failure for %q", bad)
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:05", TimeOfDay(545).String())
	assert.Equal(t, "00:00", TimeOfDay(0).String())
	assert.Equal(t, "21:00", TimeOfDay(1260).String())
}

func TestIntervalValid(t *testing.T) {
	assert.True(t, Interval{Start: 540, End: 600}.Valid())
	assert.True(t, Interval{Start: 1380, End: 1440}.Valid())
	assert.False(t, Interval{Start: 600, End: 600}.Valid())
	assert.False(t, Interval{Start: 600, End: 540}.Valid())
	assert.False(t, Interval{Start: -10, End: 60}.Valid())
	assert.False(t, Interval{Start: 1400, End: 1441}.Valid())
}
