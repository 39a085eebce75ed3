package user

import "yungwing/models"

// Lifetime spend thresholds for each member level, in NT$.
const (
	silverThreshold   = 10000
	goldThreshold     = 20000
	platinumThreshold = 30000
	vipThreshold      = 50000
)

// LevelForSpend maps lifetime spend to a member level. Levels only ever
// move up; callers must not downgrade on refunds.
func LevelForSpend(totalSpent float64) string {
	switch {
	case totalSpent >= vipThreshold:
		return models.MemberVIP
	case totalSpent >= platinumThreshold:
		return models.MemberPlatinum
	case totalSpent >= goldThreshold:
		return models.MemberGold
	case totalSpent >= silverThreshold:
		return models.MemberSilver
	default:
		return models.MemberBasic
	}
}

// PointsForAmount converts a payment amount to loyalty points: one
// point per NT$100 spent, rounded down.
func PointsForAmount(amount float64) int {
	if amount <= 0 {
		return 0
	}
	return int(amount / 100)
}
