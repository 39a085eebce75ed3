package userRepo

import (
	"go.mongodb.org/mongo-driver/bson"

	"yungwing/models"
)

// UserRepository defines persistence for members.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateSetDocument(id string, updateDoc bson.M) error

	GetByID(id string) (*models.User, error)
	GetByPhone(phone string) (*models.User, error)
	GetByLineUserID(lineUserID string) (*models.User, error)

	List(search, memberLevel string, page, limit int) ([]models.User, int64, error)
	CountAll() (int64, error)

	// AddSpendAndPoints atomically increments lifetime spend and the
	// loyalty balance.
	AddSpendAndPoints(id string, amount float64, points int) error
}
