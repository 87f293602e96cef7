package routers

import (
	"telecare-service/internal/app/delivery/http/middlewares"
	"telecare-service/internal/app/services/core/payments"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *payments.PaymentController) {
	router.Post("/create-order", paymentController.CreateOrder)

	router.With(middlewares.Authenticate).Get("/appointment/{appointmentID}", paymentController.GetSettlementByAppointment)
}
