package config

type InternalConfig struct {
	App      App
	JWT      JWT
	Admin    Admin
	Minio    AppMinio
	WhatsApp WhatsApp
	Razorpay Razorpay
	Meeting  Meeting
}

type App struct {
	Env                                  string
	Port                                 string
	Address                              string
	AllowedOrigins                       []string
	MaxRequests                          int
	ShutdownTimeoutInSeconds             int
	MaxTimeRequestsPerSeconds            int
	MinioProfilePictureMaxUploadSizeInMB int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

// Admin holds the seed credentials for the default operator account.
type Admin struct {
	Username string
	Password string
}

type AppMinio struct {
	BucketName                string
	PresignedURLExpiryInHours int
}

type WhatsApp struct {
	BaseURL          string
	AccessToken      string
	PhoneNumberID    string
	TimeoutInSeconds int
}

type Razorpay struct {
	KeyID     string
	KeySecret string
}

type Meeting struct {
	BaseURL string
}
