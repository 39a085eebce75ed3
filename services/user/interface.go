package user

import (
	"time"

	"yungwing/models"
)

// RegisterRequest carries a new member's sign-up details.
type RegisterRequest struct {
	Name     string
	Phone    string
	Password string
	Email    string
}

// UpdateProfileRequest carries the editable profile fields. Nil fields
// are left untouched.
type UpdateProfileRequest struct {
	Name     *string
	Email    *string
	Gender   *string
	Birthday *time.Time
	Address  *string
	Avatar   *string
}

// AuthResponse contains the member's ID, token and display details.
type AuthResponse struct {
	ID          string `json:"id"`
	Token       string `json:"token"`
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	MemberLevel string `json:"memberLevel"`
	IsAdmin     bool   `json:"isAdmin,omitempty"`
}

// UserService defines member account operations.
type UserService interface {
	Register(req RegisterRequest) (*AuthResponse, error)
	Authenticate(phone, password string) (*AuthResponse, error)

	// LineLogin signs a member in via their LINE identity, creating the
	// account on first contact.
	LineLogin(lineUserID, displayName, avatar string) (*AuthResponse, error)

	GetProfile(userID string) (*models.User, error)
	UpdateProfile(userID string, req UpdateProfileRequest) (*models.User, error)
	Stats(userID string) (*models.MemberStats, error)
	PointsHistory(userID, entryType string, page, limit int) ([]models.PointsEntry, models.Pagination, error)
}
