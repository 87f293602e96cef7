package constvars

// Mongo collection names.
const (
	MongoCollectionProfessionals = "professionals"
	MongoCollectionPatients      = "patients"
	MongoCollectionAppointments  = "appointments"
	MongoCollectionPayments      = "payments"
	MongoCollectionTestimonials  = "testimonials"
	MongoCollectionAdminUsers    = "admin_users"
)

// Index names, used when ensuring indexes at startup.
const (
	MongoIndexProfessionalSubdomain = "uniq_professional_subdomain"
	MongoIndexPaymentAppointment    = "uniq_payment_appointment"
)
