package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Professional is a healthcare provider on the marketplace. Subdomain is the
// unique public handle; the unique index on it is the allocation arbiter.
// Records are never hard-deleted, rejection is a status.
type Professional struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName       string             `bson:"first_name" json:"first_name"`
	LastName        string             `bson:"last_name" json:"last_name"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone" json:"phone"`
	Speciality      string             `bson:"speciality,omitempty" json:"speciality,omitempty"`
	ExperienceYears int                `bson:"experience_years,omitempty" json:"experience_years,omitempty"`
	// ConsultingFee is in minor currency units (paise).
	ConsultingFee  int64     `bson:"consulting_fees" json:"consulting_fees"`
	ThemeColor     string    `bson:"theme_color,omitempty" json:"theme_color,omitempty"`
	Subdomain      string    `bson:"subdomain" json:"subdomain"`
	Status         string    `bson:"status" json:"status"`
	ProfilePicture string    `bson:"profile_picture,omitempty" json:"-"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
