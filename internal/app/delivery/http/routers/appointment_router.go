package routers

import (
	"telecare-service/internal/app/delivery/http/middlewares"
	"telecare-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Post("/", appointmentController.CreateAppointment)
	router.Get("/{appointmentID}", appointmentController.GetAppointmentByID)
	router.Put("/{appointmentID}/complete-payment", appointmentController.CompletePayment)

	router.With(middlewares.Authenticate).Get("/professional/{professionalID}", appointmentController.ListAppointmentsByProfessional)
}
