package routers

import (
	"time"

	"telecare-service/internal/app/config"
	"telecare-service/internal/app/delivery/http/handlers"
	"telecare-service/internal/app/delivery/http/middlewares"
	"telecare-service/internal/app/services/core/admins"
	"telecare-service/internal/app/services/core/analytics"
	"telecare-service/internal/app/services/core/appointments"
	"telecare-service/internal/app/services/core/payments"
	"telecare-service/internal/app/services/core/professionals"
	"telecare-service/internal/app/services/core/testimonials"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	professionalController *professionals.ProfessionalController,
	appointmentController *appointments.AppointmentController,
	paymentController *payments.PaymentController,
	testimonialController *testimonials.TestimonialController,
	adminController *admins.AdminController,
	analyticsController *analytics.AnalyticsController,
	healthHandler *handlers.HealthHandler,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	router.Get("/health", healthHandler.Check)

	router.Route("/api", func(r chi.Router) {
		r.Get("/", handlers.ServiceStatus)

		r.Route("/onboarding", func(r chi.Router) {
			attachOnboardingRoutes(r, professionalController)
		})

		r.Route("/professionals", func(r chi.Router) {
			attachProfessionalRoutes(r, middlewares, professionalController)
		})

		r.Route("/public", func(r chi.Router) {
			attachPublicProfileRoutes(r, professionalController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController)
		})

		r.Route("/payments", func(r chi.Router) {
			attachPaymentRoutes(r, middlewares, paymentController)
		})

		r.Route("/testimonials", func(r chi.Router) {
			attachTestimonialRoutes(r, middlewares, testimonialController)
		})

		r.Route("/admin", func(r chi.Router) {
			attachAdminRoutes(r, middlewares, adminController, analyticsController)
		})
	})
}
