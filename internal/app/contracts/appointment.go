package contracts

import (
	"context"

	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*responses.AppointmentBooking, error)
	FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAppointmentsByProfessional(ctx context.Context, professionalID string) ([]models.Appointment, error)
	CompletePayment(ctx context.Context, appointmentID string, request *requests.CompletePaymentRequest) (*responses.PaymentCompletion, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByProfessionalID(ctx context.Context, professionalID string) ([]models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	Update(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
}
