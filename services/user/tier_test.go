package user

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yungwing/models"
)

func TestLevelForSpend(t *testing.T) {
	tests := []struct {
		spent float64
		want  string
	}{
		{0, models.MemberBasic},
		{9999, models.MemberBasic},
		{10000, models.MemberSilver},
		{19999.5, models.MemberSilver},
		{20000, models.MemberGold},
		{29999, models.MemberGold},
		{30000, models.MemberPlatinum},
		{49999, models.MemberPlatinum},
		{50000, models.MemberVIP},
		{120000, models.MemberVIP},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForSpend(tt.spent), "spend %.1f", tt.spent)
	}
}

func TestPointsForAmount(t *testing.T) {
	assert.Equal(t, 0, PointsForAmount(0))
	assert.Equal(t, 0, PointsForAmount(-300))
	assert.Equal(t, 0, PointsForAmount(99))
	assert.Equal(t, 1, PointsForAmount(100))
	assert.Equal(t, 1, PointsForAmount(199.99))
	assert.Equal(t, 18, PointsForAmount(1880))
}
