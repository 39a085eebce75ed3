package models

import "time"

// Member levels, ordered by lifetime spend thresholds.
const (
	MemberBasic    = "BASIC"
	MemberSilver   = "SILVER"
	MemberGold     = "GOLD"
	MemberPlatinum = "PLATINUM"
	MemberVIP      = "VIP"
)

// User represents a registered member of the studio.
type User struct {
	ID           string     `bson:"id" json:"id"`
	Name         string     `bson:"name" json:"name"`
	Phone        string     `bson:"phone" json:"phone"`
	Email        string     `bson:"email,omitempty" json:"email,omitempty"`
	PasswordHash string     `bson:"password_hash,omitempty" json:"-"`
	LineUserID   string     `bson:"line_user_id,omitempty" json:"lineUserId,omitempty"`
	Avatar       string     `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Gender       string     `bson:"gender,omitempty" json:"gender,omitempty"`
	Birthday     *time.Time `bson:"birthday,omitempty" json:"birthday,omitempty"`
	Address      string     `bson:"address,omitempty" json:"address,omitempty"`
	MemberLevel  string     `bson:"member_level" json:"memberLevel"`
	Points       int        `bson:"points" json:"points"`
	TotalSpent   float64    `bson:"total_spent" json:"totalSpent"`
	IsAdmin      bool       `bson:"is_admin,omitempty" json:"-"`
	IsActive     bool       `bson:"is_active" json:"isActive"`
	CreatedAt    time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updatedAt"`
}

// MemberStats summarises a member's activity for the profile screen.
type MemberStats struct {
	TotalBookings     int64     `json:"totalBookings"`
	CompletedBookings int64     `json:"completedBookings"`
	TotalSpent        float64   `json:"totalSpent"`
	CurrentPoints     int       `json:"currentPoints"`
	MemberSince       time.Time `json:"memberSince"`
}
