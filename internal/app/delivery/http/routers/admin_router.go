package routers

import (
	"telecare-service/internal/app/delivery/http/middlewares"
	"telecare-service/internal/app/services/core/admins"
	"telecare-service/internal/app/services/core/analytics"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, adminController *admins.AdminController, analyticsController *analytics.AnalyticsController) {
	router.Post("/login", adminController.Login)

	router.Route("/analytics", func(r chi.Router) {
		r.With(middlewares.Authenticate).Get("/overview", analyticsController.GetPlatformOverview)
		r.With(middlewares.Authenticate).Get("/{professionalID}", analyticsController.GetProfessionalAnalytics)
	})
}
