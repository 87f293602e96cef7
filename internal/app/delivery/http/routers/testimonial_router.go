package routers

import (
	"telecare-service/internal/app/delivery/http/middlewares"
	"telecare-service/internal/app/services/core/testimonials"

	"github.com/go-chi/chi/v5"
)

func attachTestimonialRoutes(router chi.Router, middlewares *middlewares.Middlewares, testimonialController *testimonials.TestimonialController) {
	router.With(middlewares.Authenticate).Post("/", testimonialController.CreateTestimonial)
	router.Get("/{professionalID}", testimonialController.ListTestimonialsByProfessional)
}
