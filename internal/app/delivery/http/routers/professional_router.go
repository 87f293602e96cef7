package routers

import (
	"telecare-service/internal/app/delivery/http/middlewares"
	"telecare-service/internal/app/services/core/professionals"

	"github.com/go-chi/chi/v5"
)

func attachOnboardingRoutes(router chi.Router, professionalController *professionals.ProfessionalController) {
	router.Post("/submit", professionalController.OnboardProfessional)
}

func attachProfessionalRoutes(router chi.Router, middlewares *middlewares.Middlewares, professionalController *professionals.ProfessionalController) {
	router.Get("/approved", professionalController.ListApprovedProfessionals)

	router.With(middlewares.Authenticate).Get("/", professionalController.ListProfessionals)
	router.With(middlewares.Authenticate).Post("/", professionalController.CreateProfessional)
	router.With(middlewares.Authenticate).Get("/{professionalID}", professionalController.GetProfessionalByID)
	router.With(middlewares.Authenticate).Put("/{professionalID}", professionalController.UpdateProfessional)
	router.With(middlewares.Authenticate).Put("/{professionalID}/approve", professionalController.ApproveProfessional)
	router.With(middlewares.Authenticate).Put("/{professionalID}/reject", professionalController.RejectProfessional)
	router.With(middlewares.Authenticate).Post("/{professionalID}/profile-picture", professionalController.UploadProfilePicture)
}

func attachPublicProfileRoutes(router chi.Router, professionalController *professionals.ProfessionalController) {
	router.Get("/professional/{subdomain}", professionalController.GetProfessionalBySubdomain)
}
