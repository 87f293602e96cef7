package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"telecare-service/internal/app/config"
	"telecare-service/internal/app/delivery/http/handlers"
	"telecare-service/internal/app/delivery/http/middlewares"
	"telecare-service/internal/app/delivery/http/routers"
	"telecare-service/internal/app/drivers/database"
	"telecare-service/internal/app/drivers/logger"
	"telecare-service/internal/app/drivers/storage"
	"telecare-service/internal/app/services/core/admins"
	"telecare-service/internal/app/services/core/analytics"
	"telecare-service/internal/app/services/core/appointments"
	"telecare-service/internal/app/services/core/patients"
	"telecare-service/internal/app/services/core/payments"
	"telecare-service/internal/app/services/core/professionals"
	"telecare-service/internal/app/services/core/testimonials"
	"telecare-service/internal/app/services/shared/meeting"
	paymentgateway "telecare-service/internal/app/services/shared/payment_gateway"
	redisrepo "telecare-service/internal/app/services/shared/redis"
	minioStorage "telecare-service/internal/app/services/shared/storage"
	"telecare-service/internal/app/services/shared/whatsapp"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		MongoDB:        mongoClient.Database(driverConfig.MongoDB.DbName),
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	notificationService := whatsapp.NewWhatsAppService(bootstrap.InternalConfig, bootstrap.Logger)
	meetingService := meeting.NewMeetingService(bootstrap.InternalConfig)
	gatewayService := paymentgateway.NewRazorpayService(bootstrap.InternalConfig, bootstrap.Logger)
	objectStorage := minioStorage.NewMinioStorage(bootstrap.Minio)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	// Professionals
	professionalRepository := professionals.NewProfessionalMongoRepository(bootstrap.MongoClient, dbName)
	if err := professionalRepository.EnsureIndexes(startupCtx); err != nil {
		log.Fatalf("Failed to ensure professional indexes: %v", err)
	}
	professionalUsecase := professionals.NewProfessionalUsecase(professionalRepository, objectStorage, bootstrap.InternalConfig)
	professionalController := professionals.NewProfessionalController(bootstrap.Logger, professionalUsecase)

	// Patients
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoClient, dbName)

	// Payments
	paymentRepository := payments.NewPaymentMongoRepository(bootstrap.MongoClient, dbName)
	if err := paymentRepository.EnsureIndexes(startupCtx); err != nil {
		log.Fatalf("Failed to ensure payment indexes: %v", err)
	}

	// Appointments
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoClient, dbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		professionalRepository,
		patientRepository,
		paymentRepository,
		meetingService,
		notificationService,
	)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	paymentUsecase := payments.NewPaymentUsecase(
		paymentRepository,
		appointmentRepository,
		professionalRepository,
		gatewayService,
		bootstrap.InternalConfig,
	)
	paymentController := payments.NewPaymentController(bootstrap.Logger, paymentUsecase)

	// Testimonials
	testimonialRepository := testimonials.NewTestimonialMongoRepository(bootstrap.MongoClient, dbName)
	testimonialUsecase := testimonials.NewTestimonialUsecase(testimonialRepository, professionalRepository)
	testimonialController := testimonials.NewTestimonialController(bootstrap.Logger, testimonialUsecase)

	// Admins
	adminRepository := admins.NewAdminMongoRepository(bootstrap.MongoClient, dbName)
	adminUsecase := admins.NewAdminUsecase(adminRepository, redisRepository, bootstrap.InternalConfig)
	if err := adminUsecase.EnsureDefaultAdmin(startupCtx); err != nil {
		log.Fatalf("Failed to seed default admin: %v", err)
	}
	adminController := admins.NewAdminController(bootstrap.Logger, adminUsecase)

	// Analytics
	analyticsUsecase := analytics.NewAnalyticsUsecase(professionalRepository, appointmentRepository, paymentRepository)
	analyticsController := analytics.NewAnalyticsController(bootstrap.Logger, analyticsUsecase)

	// Health
	healthHandler := handlers.NewHealthHandler(bootstrap.Logger, bootstrap.MongoClient, bootstrap.Redis)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		professionalController,
		appointmentController,
		paymentController,
		testimonialController,
		adminController,
		analyticsController,
		healthHandler,
	)
}
