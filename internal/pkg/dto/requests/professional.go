package requests

type OnboardProfessionalRequest struct {
	FirstName       string `json:"first_name" validate:"required,min=1,max=100"`
	LastName        string `json:"last_name" validate:"required,min=1,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,phone_number"`
	Speciality      string `json:"speciality" validate:"omitempty,max=200"`
	ExperienceYears int    `json:"experience_years" validate:"omitempty,gte=0,lte=80"`
	ConsultingFee   int64  `json:"consulting_fees" validate:"required,gt=0"`
	ThemeColor      string `json:"theme_color" validate:"omitempty,hexcolor"`
}

// CreateProfessionalRequest is the operator variant of onboarding. It allows
// pinning the status so an admin can register an already-vetted provider.
type CreateProfessionalRequest struct {
	OnboardProfessionalRequest
	Status string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
}

// UpdateProfessionalRequest uses pointers so absent fields are left untouched.
type UpdateProfessionalRequest struct {
	FirstName       *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName        *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Phone           *string `json:"phone" validate:"omitempty,phone_number"`
	Speciality      *string `json:"speciality" validate:"omitempty,max=200"`
	ExperienceYears *int    `json:"experience_years" validate:"omitempty,gte=0,lte=80"`
	ConsultingFee   *int64  `json:"consulting_fees" validate:"omitempty,gt=0"`
	ThemeColor      *string `json:"theme_color" validate:"omitempty,hexcolor"`
	Status          *string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
}

type UploadProfilePictureRequest struct {
	ProfilePicture string `json:"profile_picture" validate:"required"`
}
