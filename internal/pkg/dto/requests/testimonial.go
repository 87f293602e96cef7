package requests

type CreateTestimonialRequest struct {
	ProfessionalID string `json:"professional_id" validate:"required"`
	PatientName    string `json:"patient_name" validate:"required,min=1,max=100"`
	Rating         int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment        string `json:"comment" validate:"omitempty,max=2000"`
}
