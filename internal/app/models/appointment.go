package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment tracks a booking from creation through payment to meeting-link
// issuance. PaymentStatus only moves pending -> completed; there is no
// refund path.
type Appointment struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProfessionalID   primitive.ObjectID `bson:"professional_id" json:"professional_id"`
	PatientID        primitive.ObjectID `bson:"patient_id" json:"patient_id"`
	AppointmentDate  time.Time          `bson:"appointment_date" json:"appointment_date"`
	ReferralSource   string             `bson:"referral_source,omitempty" json:"referral_source,omitempty"`
	IssueDescription string             `bson:"issue_description,omitempty" json:"issue_description,omitempty"`
	PaymentID        string             `bson:"payment_id,omitempty" json:"payment_id,omitempty"`
	PaymentStatus    string             `bson:"payment_status" json:"payment_status"`
	MeetingLink      string             `bson:"meeting_link,omitempty" json:"meeting_link,omitempty"`
	Status           string             `bson:"status" json:"status"`
	// Notified flags record that a dispatch was attempted, not that it was
	// delivered.
	PatientNotified      bool      `bson:"patient_notified" json:"patient_notified"`
	ProfessionalNotified bool      `bson:"professional_notified" json:"professional_notified"`
	CreatedAt            time.Time `bson:"created_at" json:"created_at"`
}
