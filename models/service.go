package models

import "time"

// Service is a bookable treatment from the studio catalogue.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Duration    int       `bson:"duration" json:"duration"` // minutes
	Price       float64   `bson:"price" json:"price"`
	Category    string    `bson:"category" json:"category"`
	IsActive    bool      `bson:"is_active" json:"isActive"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// Staff is a therapist employed by the studio. Staff assignment on a
// booking is optional and does not participate in conflict checks.
type Staff struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Avatar      string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Bio         string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Specialties []string  `bson:"specialties" json:"specialties"` // service categories
	IsActive    bool      `bson:"is_active" json:"isActive"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}
