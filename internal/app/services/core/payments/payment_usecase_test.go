package payments

import (
	"context"
	"errors"
	"testing"

	"telecare-service/internal/app/config"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubPaymentRepository struct {
	settlement *models.Payment
}

func (s *stubPaymentRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (s *stubPaymentRepository) Create(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	return payment, nil
}

func (s *stubPaymentRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Payment, error) {
	return s.settlement, nil
}

func (s *stubPaymentRepository) FindAll(ctx context.Context) ([]models.Payment, error) {
	return nil, nil
}

func (s *stubPaymentRepository) FindByProfessionalID(ctx context.Context, professionalID string) ([]models.Payment, error) {
	return nil, nil
}

type stubAppointmentRepository struct {
	appointment *models.Appointment
}

func (s *stubAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	return appointment, nil
}

func (s *stubAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	if s.appointment != nil && s.appointment.ID.Hex() == appointmentID {
		copied := *s.appointment
		return &copied, nil
	}
	return nil, nil
}

func (s *stubAppointmentRepository) FindByProfessionalID(ctx context.Context, professionalID string) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	return appointment, nil
}

type stubProfessionalRepository struct {
	professional *models.Professional
}

func (s *stubProfessionalRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (s *stubProfessionalRepository) CreateWithUniqueSubdomain(ctx context.Context, professional *models.Professional, baseSubdomain string) (*models.Professional, error) {
	return professional, nil
}

func (s *stubProfessionalRepository) FindAll(ctx context.Context) ([]models.Professional, error) {
	return nil, nil
}

func (s *stubProfessionalRepository) FindByStatus(ctx context.Context, status string) ([]models.Professional, error) {
	return nil, nil
}

func (s *stubProfessionalRepository) FindByID(ctx context.Context, professionalID string) (*models.Professional, error) {
	if s.professional != nil && s.professional.ID.Hex() == professionalID {
		copied := *s.professional
		return &copied, nil
	}
	return nil, nil
}

func (s *stubProfessionalRepository) FindBySubdomain(ctx context.Context, subdomain string) (*models.Professional, error) {
	return nil, nil
}

func (s *stubProfessionalRepository) Update(ctx context.Context, professional *models.Professional) (*models.Professional, error) {
	return professional, nil
}

type recordingGateway struct {
	amount   int64
	currency string
	receipt  string
}

func (g *recordingGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*responses.GatewayOrder, error) {
	g.amount = amount
	g.currency = currency
	g.receipt = receipt
	return &responses.GatewayOrder{
		OrderID:  "order_TEST1",
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	professional := &models.Professional{
		ID:            primitive.NewObjectID(),
		ConsultingFee: 150000,
		Status:        constvars.ProfessionalStatusApproved,
	}
	appointment := &models.Appointment{
		ID:             primitive.NewObjectID(),
		ProfessionalID: professional.ID,
		PaymentStatus:  constvars.PaymentStatusPending,
	}

	newFixture := func() (*recordingGateway, *stubAppointmentRepository, *paymentUsecase) {
		gateway := &recordingGateway{}
		appointments := &stubAppointmentRepository{appointment: appointment}
		uc := NewPaymentUsecase(
			&stubPaymentRepository{},
			appointments,
			&stubProfessionalRepository{professional: professional},
			gateway,
			&config.InternalConfig{Razorpay: config.Razorpay{KeyID: "rzp_test_key"}},
		).(*paymentUsecase)
		return gateway, appointments, uc
	}

	t.Run("Prices The Order At The Consulting Fee", func(t *testing.T) {
		gateway, _, uc := newFixture()

		order, err := uc.CreateOrder(ctx, &requests.CreateOrderRequest{AppointmentID: appointment.ID.Hex()})
		require.NoError(t, err)

		assert.Equal(t, int64(150000), gateway.amount)
		assert.Equal(t, constvars.CurrencyINR, gateway.currency)
		assert.Contains(t, gateway.receipt, appointment.ID.Hex())

		assert.Equal(t, "order_TEST1", order.OrderID)
		assert.Equal(t, int64(150000), order.Amount)
		assert.Equal(t, "rzp_test_key", order.KeyID)
		assert.Equal(t, appointment.ID.Hex(), order.AppointmentID)
	})

	t.Run("Paid Appointment Gets Conflict", func(t *testing.T) {
		_, appointments, uc := newFixture()
		paid := *appointment
		paid.PaymentStatus = constvars.PaymentStatusCompleted
		appointments.appointment = &paid

		_, err := uc.CreateOrder(ctx, &requests.CreateOrderRequest{AppointmentID: appointment.ID.Hex()})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("Unknown Appointment Answers Not Found", func(t *testing.T) {
		_, _, uc := newFixture()

		_, err := uc.CreateOrder(ctx, &requests.CreateOrderRequest{AppointmentID: primitive.NewObjectID().Hex()})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
