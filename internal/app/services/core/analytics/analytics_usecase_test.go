package analytics

import (
	"context"
	"testing"

	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubProfessionalRepository struct {
	professionals []models.Professional
}

func (s *stubProfessionalRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (s *stubProfessionalRepository) CreateWithUniqueSubdomain(ctx context.Context, professional *models.Professional, baseSubdomain string) (*models.Professional, error) {
	return professional, nil
}

func (s *stubProfessionalRepository) FindAll(ctx context.Context) ([]models.Professional, error) {
	return s.professionals, nil
}

func (s *stubProfessionalRepository) FindByStatus(ctx context.Context, status string) ([]models.Professional, error) {
	return nil, nil
}

func (s *stubProfessionalRepository) FindByID(ctx context.Context, professionalID string) (*models.Professional, error) {
	for i := range s.professionals {
		if s.professionals[i].ID.Hex() == professionalID {
			return &s.professionals[i], nil
		}
	}
	return nil, nil
}

func (s *stubProfessionalRepository) FindBySubdomain(ctx context.Context, subdomain string) (*models.Professional, error) {
	return nil, nil
}

func (s *stubProfessionalRepository) Update(ctx context.Context, professional *models.Professional) (*models.Professional, error) {
	return professional, nil
}

type stubAppointmentRepository struct {
	appointments []models.Appointment
}

func (s *stubAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	return appointment, nil
}

func (s *stubAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentRepository) FindByProfessionalID(ctx context.Context, professionalID string) ([]models.Appointment, error) {
	matched := make([]models.Appointment, 0)
	for i := range s.appointments {
		if s.appointments[i].ProfessionalID.Hex() == professionalID {
			matched = append(matched, s.appointments[i])
		}
	}
	return matched, nil
}

func (s *stubAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return s.appointments, nil
}

func (s *stubAppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	return appointment, nil
}

type stubPaymentRepository struct {
	settlements []models.Payment
}

func (s *stubPaymentRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (s *stubPaymentRepository) Create(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	return payment, nil
}

func (s *stubPaymentRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Payment, error) {
	return nil, nil
}

func (s *stubPaymentRepository) FindAll(ctx context.Context) ([]models.Payment, error) {
	return s.settlements, nil
}

func (s *stubPaymentRepository) FindByProfessionalID(ctx context.Context, professionalID string) ([]models.Payment, error) {
	matched := make([]models.Payment, 0)
	for i := range s.settlements {
		if s.settlements[i].ProfessionalID.Hex() == professionalID {
			matched = append(matched, s.settlements[i])
		}
	}
	return matched, nil
}

func TestProfessionalAnalytics(t *testing.T) {
	ctx := context.Background()

	professionalID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	professionals := &stubProfessionalRepository{professionals: []models.Professional{
		{ID: professionalID, Status: constvars.ProfessionalStatusApproved},
	}}
	appointments := &stubAppointmentRepository{appointments: []models.Appointment{
		{ProfessionalID: professionalID, PaymentStatus: constvars.PaymentStatusCompleted},
		{ProfessionalID: professionalID, PaymentStatus: constvars.PaymentStatusCompleted},
		{ProfessionalID: professionalID, PaymentStatus: constvars.PaymentStatusPending},
		{ProfessionalID: otherID, PaymentStatus: constvars.PaymentStatusCompleted},
	}}
	payments := &stubPaymentRepository{settlements: []models.Payment{
		{ProfessionalID: professionalID, GrossAmount: 150000, PlatformFee: 15000, ProfessionalAmount: 135000},
		{ProfessionalID: professionalID, GrossAmount: 100000, PlatformFee: 10000, ProfessionalAmount: 90000},
		{ProfessionalID: otherID, GrossAmount: 50000, PlatformFee: 5000, ProfessionalAmount: 45000},
	}}

	uc := NewAnalyticsUsecase(professionals, appointments, payments)

	t.Run("Counts And Earnings Scoped To The Professional", func(t *testing.T) {
		result, err := uc.ProfessionalAnalytics(ctx, professionalID.Hex())
		require.NoError(t, err)

		assert.Equal(t, 3, result.TotalAppointments)
		assert.Equal(t, 2, result.CompletedAppointments)
		assert.Equal(t, 1, result.PendingAppointments)
		assert.Equal(t, int64(250000), result.GrossRevenue)
		assert.Equal(t, int64(25000), result.PlatformFees)
		assert.Equal(t, int64(225000), result.TotalEarnings)
		assert.Equal(t, result.GrossRevenue, result.PlatformFees+result.TotalEarnings)
	})

	t.Run("Unknown Professional Answers Not Found", func(t *testing.T) {
		_, err := uc.ProfessionalAnalytics(ctx, primitive.NewObjectID().Hex())
		require.Error(t, err)
	})
}

func TestPlatformOverview(t *testing.T) {
	ctx := context.Background()

	professionals := &stubProfessionalRepository{professionals: []models.Professional{
		{ID: primitive.NewObjectID(), Status: constvars.ProfessionalStatusApproved},
		{ID: primitive.NewObjectID(), Status: constvars.ProfessionalStatusApproved},
		{ID: primitive.NewObjectID(), Status: constvars.ProfessionalStatusPending},
		{ID: primitive.NewObjectID(), Status: constvars.ProfessionalStatusRejected},
	}}
	appointments := &stubAppointmentRepository{appointments: []models.Appointment{
		{PaymentStatus: constvars.PaymentStatusCompleted},
		{PaymentStatus: constvars.PaymentStatusPending},
	}}
	payments := &stubPaymentRepository{settlements: []models.Payment{
		{GrossAmount: 150000, PlatformFee: 15000, ProfessionalAmount: 135000},
		{GrossAmount: 100000, PlatformFee: 10000, ProfessionalAmount: 90000},
	}}

	uc := NewAnalyticsUsecase(professionals, appointments, payments)

	overview, err := uc.PlatformOverview(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, overview.TotalProfessionals)
	assert.Equal(t, 2, overview.ApprovedProfessionals)
	assert.Equal(t, 1, overview.PendingProfessionals)
	assert.Equal(t, 1, overview.RejectedProfessionals)
	assert.Equal(t, 2, overview.TotalAppointments)
	assert.Equal(t, 2, overview.CompletedPayments)
	assert.Equal(t, int64(250000), overview.GrossVolume)
	assert.Equal(t, int64(25000), overview.PlatformRevenue)
	assert.Equal(t, int64(225000), overview.ProfessionalPayout)
	assert.Equal(t, overview.GrossVolume, overview.PlatformRevenue+overview.ProfessionalPayout)
}
