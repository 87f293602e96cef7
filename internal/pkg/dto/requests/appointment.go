package requests

type CreateAppointmentRequest struct {
	ProfessionalID   string `json:"professional_id" validate:"required"`
	FirstName        string `json:"first_name" validate:"required,min=1,max=100"`
	LastName         string `json:"last_name" validate:"required,min=1,max=100"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required,phone_number"`
	Gender           string `json:"gender" validate:"omitempty,oneof=male female other"`
	Age              int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	AppointmentDate  string `json:"appointment_date" validate:"required"`
	ReferralSource   string `json:"referral_source" validate:"omitempty,max=200"`
	IssueDescription string `json:"issue_description" validate:"omitempty,max=2000"`
}

type CompletePaymentRequest struct {
	PaymentID string `json:"payment_id" validate:"required"`
	OrderID   string `json:"order_id" validate:"omitempty"`
}
