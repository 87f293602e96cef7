package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is the settlement record written once per appointment when payment
// completes. The unique index on AppointmentID makes the write the arbiter
// against duplicate settlement. All amounts are minor currency units.
type Payment struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AppointmentID      primitive.ObjectID `bson:"appointment_id" json:"appointment_id"`
	ProfessionalID     primitive.ObjectID `bson:"professional_id" json:"professional_id"`
	PaymentID          string             `bson:"payment_id" json:"payment_id"`
	OrderID            string             `bson:"order_id,omitempty" json:"order_id,omitempty"`
	GrossAmount        int64              `bson:"gross_amount" json:"gross_amount"`
	PlatformFee        int64              `bson:"platform_fee" json:"platform_fee"`
	ProfessionalAmount int64              `bson:"professional_amount" json:"professional_amount"`
	Status             string             `bson:"status" json:"status"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
}
