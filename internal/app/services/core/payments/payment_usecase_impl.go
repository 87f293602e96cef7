package payments

import (
	"context"

	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
)

type paymentUsecase struct {
	PaymentRepository      contracts.PaymentRepository
	AppointmentRepository  contracts.AppointmentRepository
	ProfessionalRepository contracts.ProfessionalRepository
	PaymentGateway         contracts.PaymentGatewayService
	InternalConfig         *config.InternalConfig
}

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	appointmentRepository contracts.AppointmentRepository,
	professionalRepository contracts.ProfessionalRepository,
	paymentGateway contracts.PaymentGatewayService,
	internalConfig *config.InternalConfig,
) contracts.PaymentUsecase {
	return &paymentUsecase{
		PaymentRepository:      paymentRepository,
		AppointmentRepository:  appointmentRepository,
		ProfessionalRepository: professionalRepository,
		PaymentGateway:         paymentGateway,
		InternalConfig:         internalConfig,
	}
}

// CreateOrder opens a checkout order for an unpaid appointment, priced at the
// professional's consulting fee.
func (uc *paymentUsecase) CreateOrder(ctx context.Context, request *requests.CreateOrderRequest) (*responses.PaymentOrder, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.PaymentStatus == constvars.PaymentStatusCompleted {
		return nil, exceptions.ErrPaymentAlreadySettled(nil)
	}

	professional, err := uc.ProfessionalRepository.FindByID(ctx, appointment.ProfessionalID.Hex())
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, exceptions.ErrProfessionalNotFound(nil)
	}

	receipt := utils.GenerateOrderReceipt(appointment.ID.Hex())
	order, err := uc.PaymentGateway.CreateOrder(ctx, professional.ConsultingFee, constvars.CurrencyINR, receipt)
	if err != nil {
		return nil, err
	}

	return &responses.PaymentOrder{
		AppointmentID: appointment.ID.Hex(),
		OrderID:       order.OrderID,
		Amount:        order.Amount,
		Currency:      order.Currency,
		KeyID:         uc.InternalConfig.Razorpay.KeyID,
	}, nil
}

func (uc *paymentUsecase) FindSettlementByAppointmentID(ctx context.Context, appointmentID string) (*models.Payment, error) {
	settlement, err := uc.PaymentRepository.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if settlement == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	return settlement, nil
}
