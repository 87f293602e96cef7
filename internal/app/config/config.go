package config

import (
	"telecare-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "telecare"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level: utils.GetEnvString("LOGGER_LEVEL", "debug"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                                  utils.GetEnvString("APP_ENV", "development"),
			Port:                                 utils.GetEnvString("APP_PORT", ":8080"),
			Address:                              utils.GetEnvString("APP_ADDRESS", "localhost"),
			AllowedOrigins:                       utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:                          utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:             utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds:            utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
			MinioProfilePictureMaxUploadSizeInMB: utils.GetEnvInt("APP_MINIO_PROFILE_PICTURE_UPLOAD_MAX_SIZE_IN_MB", 2),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "telecare-secret"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Admin: Admin{
			Username: utils.GetEnvString("ADMIN_USERNAME", "teleadmin"),
			Password: utils.GetEnvString("ADMIN_PASSWORD", "teleadm@2026"),
		},
		Minio: AppMinio{
			BucketName:                utils.GetEnvString("MINIO_BUCKET_NAME", "telecare-assets"),
			PresignedURLExpiryInHours: utils.GetEnvInt("MINIO_PRESIGNED_URL_EXPIRY_IN_HOURS", 24),
		},
		WhatsApp: WhatsApp{
			BaseURL:          utils.GetEnvString("WHATSAPP_BASE_URL", "https://graph.facebook.com/v19.0"),
			AccessToken:      utils.GetEnvString("WHATSAPP_ACCESS_TOKEN", ""),
			PhoneNumberID:    utils.GetEnvString("WHATSAPP_PHONE_NUMBER_ID", ""),
			TimeoutInSeconds: utils.GetEnvInt("WHATSAPP_TIMEOUT_IN_SECONDS", 10),
		},
		Razorpay: Razorpay{
			KeyID:     utils.GetEnvString("RAZORPAY_KEY_ID", ""),
			KeySecret: utils.GetEnvString("RAZORPAY_KEY_SECRET", ""),
		},
		Meeting: Meeting{
			BaseURL: utils.GetEnvString("MEETING_BASE_URL", "https://meet.telecarezone.com"),
		},
	}
}
