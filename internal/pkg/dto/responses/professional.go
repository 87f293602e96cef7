package responses

import "time"

// ProfessionalProfile is the public projection of a professional. Contact
// details stay internal; only what a visiting patient needs is exposed.
type ProfessionalProfile struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Speciality        string    `json:"speciality,omitempty"`
	ExperienceYears   int       `json:"experience_years,omitempty"`
	ConsultingFee     int64     `json:"consulting_fees"`
	ThemeColor        string    `json:"theme_color,omitempty"`
	Subdomain         string    `json:"subdomain"`
	ProfilePictureURL string    `json:"profile_picture_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type ProfilePicture struct {
	ProfilePictureURL string `json:"profile_picture_url"`
}
