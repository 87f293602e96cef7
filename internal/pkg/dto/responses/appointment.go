package responses

import "telecare-service/internal/app/models"

type AppointmentBooking struct {
	Appointment *models.Appointment `json:"appointment"`
	Patient     *models.Patient     `json:"patient"`
}

// PaymentCompletion reports the outcome of marking an appointment paid. The
// dispatch fields carry per-recipient outcomes so a caller can see a failed
// notification without the completion itself failing.
type PaymentCompletion struct {
	Appointment          *models.Appointment `json:"appointment"`
	Settlement           *models.Payment     `json:"settlement"`
	MeetingLink          string              `json:"meeting_link"`
	PatientDispatch      string              `json:"patient_notification"`
	ProfessionalDispatch string              `json:"professional_notification"`
}
