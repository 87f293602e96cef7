package contracts

import (
	"context"

	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	CreateOrder(ctx context.Context, request *requests.CreateOrderRequest) (*responses.PaymentOrder, error)
	FindSettlementByAppointmentID(ctx context.Context, appointmentID string) (*models.Payment, error)
}

type PaymentRepository interface {
	EnsureIndexes(ctx context.Context) error
	// Create returns ErrPaymentAlreadySettled when a settlement for the
	// appointment already exists.
	Create(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Payment, error)
	FindAll(ctx context.Context) ([]models.Payment, error)
	FindByProfessionalID(ctx context.Context, professionalID string) ([]models.Payment, error)
}
