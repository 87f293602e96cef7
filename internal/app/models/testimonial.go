package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Testimonial struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProfessionalID primitive.ObjectID `bson:"professional_id" json:"professional_id"`
	PatientName    string             `bson:"patient_name" json:"patient_name"`
	Rating         int                `bson:"rating" json:"rating"`
	Comment        string             `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
