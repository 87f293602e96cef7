package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeAppointmentRepository struct {
	byID map[string]*models.Appointment
}

func (f *fakeAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	stored := *appointment
	stored.ID = primitive.NewObjectID()
	f.byID[stored.ID.Hex()] = &stored
	result := stored
	return &result, nil
}

func (f *fakeAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	a, ok := f.byID[appointmentID]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAppointmentRepository) FindByProfessionalID(ctx context.Context, professionalID string) ([]models.Appointment, error) {
	matched := make([]models.Appointment, 0)
	for _, a := range f.byID {
		if a.ProfessionalID.Hex() == professionalID {
			matched = append(matched, *a)
		}
	}
	return matched, nil
}

func (f *fakeAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	all := make([]models.Appointment, 0, len(f.byID))
	for _, a := range f.byID {
		all = append(all, *a)
	}
	return all, nil
}

func (f *fakeAppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	stored := *appointment
	f.byID[appointment.ID.Hex()] = &stored
	return appointment, nil
}

type fakeBookingProfessionalRepository struct {
	byID map[string]*models.Professional
}

func (f *fakeBookingProfessionalRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (f *fakeBookingProfessionalRepository) CreateWithUniqueSubdomain(ctx context.Context, professional *models.Professional, baseSubdomain string) (*models.Professional, error) {
	stored := *professional
	stored.ID = primitive.NewObjectID()
	stored.Subdomain = baseSubdomain
	f.byID[stored.ID.Hex()] = &stored
	result := stored
	return &result, nil
}

func (f *fakeBookingProfessionalRepository) FindAll(ctx context.Context) ([]models.Professional, error) {
	return nil, nil
}

func (f *fakeBookingProfessionalRepository) FindByStatus(ctx context.Context, status string) ([]models.Professional, error) {
	return nil, nil
}

func (f *fakeBookingProfessionalRepository) FindByID(ctx context.Context, professionalID string) (*models.Professional, error) {
	p, ok := f.byID[professionalID]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (f *fakeBookingProfessionalRepository) FindBySubdomain(ctx context.Context, subdomain string) (*models.Professional, error) {
	return nil, nil
}

func (f *fakeBookingProfessionalRepository) Update(ctx context.Context, professional *models.Professional) (*models.Professional, error) {
	return professional, nil
}

type fakePatientRepository struct {
	byID map[string]*models.Patient
}

func (f *fakePatientRepository) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	stored := *patient
	stored.ID = primitive.NewObjectID()
	f.byID[stored.ID.Hex()] = &stored
	result := stored
	return &result, nil
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	p, ok := f.byID[patientID]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

// fakePaymentRepository enforces one settlement per appointment, the same
// guarantee the unique index gives the real repository.
type fakePaymentRepository struct {
	byAppointment map[string]*models.Payment
}

func (f *fakePaymentRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (f *fakePaymentRepository) Create(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	key := payment.AppointmentID.Hex()
	if _, exists := f.byAppointment[key]; exists {
		return nil, exceptions.ErrPaymentAlreadySettled(nil)
	}
	stored := *payment
	stored.ID = primitive.NewObjectID()
	f.byAppointment[key] = &stored
	result := stored
	return &result, nil
}

func (f *fakePaymentRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Payment, error) {
	p, ok := f.byAppointment[appointmentID]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (f *fakePaymentRepository) FindAll(ctx context.Context) ([]models.Payment, error) {
	all := make([]models.Payment, 0, len(f.byAppointment))
	for _, p := range f.byAppointment {
		all = append(all, *p)
	}
	return all, nil
}

func (f *fakePaymentRepository) FindByProfessionalID(ctx context.Context, professionalID string) ([]models.Payment, error) {
	matched := make([]models.Payment, 0)
	for _, p := range f.byAppointment {
		if p.ProfessionalID.Hex() == professionalID {
			matched = append(matched, *p)
		}
	}
	return matched, nil
}

type fakeMeetingService struct {
	calls int
}

func (f *fakeMeetingService) CreateMeeting(ctx context.Context, appointmentID string) (string, error) {
	f.calls++
	return "https://meet.example.com/consultation/" + appointmentID, nil
}

type sentMessage struct {
	Phone   string
	Message string
}

type fakeNotificationService struct {
	outcome string
	sent    []sentMessage
}

func (f *fakeNotificationService) SendMessage(ctx context.Context, recipientPhone, message string) (string, error) {
	f.sent = append(f.sent, sentMessage{Phone: recipientPhone, Message: message})
	return f.outcome, nil
}

type bookingFixture struct {
	usecase       contracts.AppointmentUsecase
	appointments  *fakeAppointmentRepository
	professionals *fakeBookingProfessionalRepository
	patients      *fakePatientRepository
	payments      *fakePaymentRepository
	meetings      *fakeMeetingService
	notifications *fakeNotificationService
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		appointments:  &fakeAppointmentRepository{byID: make(map[string]*models.Appointment)},
		professionals: &fakeBookingProfessionalRepository{byID: make(map[string]*models.Professional)},
		patients:      &fakePatientRepository{byID: make(map[string]*models.Patient)},
		payments:      &fakePaymentRepository{byAppointment: make(map[string]*models.Payment)},
		meetings:      &fakeMeetingService{},
		notifications: &fakeNotificationService{outcome: constvars.DispatchOutcomeSent},
	}
	f.usecase = NewAppointmentUsecase(
		f.appointments,
		f.professionals,
		f.patients,
		f.payments,
		f.meetings,
		f.notifications,
	)
	return f
}

func (f *bookingFixture) seedProfessional(t *testing.T, status string, fee int64) *models.Professional {
	t.Helper()
	professional, err := f.professionals.CreateWithUniqueSubdomain(context.Background(), &models.Professional{
		FirstName:     "Asha",
		LastName:      "Rao",
		Email:         "asha@example.com",
		Phone:         "+919876500001",
		ConsultingFee: fee,
		Status:        status,
	}, "asharao")
	require.NoError(t, err)
	return professional
}

func bookingRequest(professionalID string) *requests.CreateAppointmentRequest {
	return &requests.CreateAppointmentRequest{
		ProfessionalID:  professionalID,
		FirstName:       "Vikram",
		LastName:        "Shah",
		Email:           "vikram@example.com",
		Phone:           "+919876500002",
		AppointmentDate: "2026-09-15T10:30:00+05:30",
	}
}

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("Books Against Approved Professional", func(t *testing.T) {
		fixture := newBookingFixture()
		professional := fixture.seedProfessional(t, constvars.ProfessionalStatusApproved, 150000)

		booking, err := fixture.usecase.CreateAppointment(ctx, bookingRequest(professional.ID.Hex()))
		require.NoError(t, err)

		assert.Equal(t, "Vikram", booking.Patient.FirstName)
		assert.Equal(t, professional.ID, booking.Appointment.ProfessionalID)
		assert.Equal(t, booking.Patient.ID, booking.Appointment.PatientID)
		assert.Equal(t, constvars.PaymentStatusPending, booking.Appointment.PaymentStatus)
		assert.Equal(t, constvars.AppointmentStatusScheduled, booking.Appointment.Status)
		assert.Empty(t, booking.Appointment.MeetingLink)
	})

	t.Run("Every Booking Creates A Fresh Patient", func(t *testing.T) {
		fixture := newBookingFixture()
		professional := fixture.seedProfessional(t, constvars.ProfessionalStatusApproved, 150000)

		first, err := fixture.usecase.CreateAppointment(ctx, bookingRequest(professional.ID.Hex()))
		require.NoError(t, err)
		second, err := fixture.usecase.CreateAppointment(ctx, bookingRequest(professional.ID.Hex()))
		require.NoError(t, err)

		assert.NotEqual(t, first.Patient.ID, second.Patient.ID)
	})

	t.Run("Pending Professional Is Not Bookable", func(t *testing.T) {
		fixture := newBookingFixture()
		professional := fixture.seedProfessional(t, constvars.ProfessionalStatusPending, 150000)

		_, err := fixture.usecase.CreateAppointment(ctx, bookingRequest(professional.ID.Hex()))
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Unknown Professional Is Rejected", func(t *testing.T) {
		fixture := newBookingFixture()

		_, err := fixture.usecase.CreateAppointment(ctx, bookingRequest(primitive.NewObjectID().Hex()))
		require.Error(t, err)
	})

	t.Run("Malformed Date Is Rejected", func(t *testing.T) {
		fixture := newBookingFixture()
		professional := fixture.seedProfessional(t, constvars.ProfessionalStatusApproved, 150000)

		request := bookingRequest(professional.ID.Hex())
		request.AppointmentDate = "15-09-2026 10:30"

		_, err := fixture.usecase.CreateAppointment(ctx, request)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestCompletePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Settles Splits And Notifies", func(t *testing.T) {
		fixture := newBookingFixture()
		professional := fixture.seedProfessional(t, constvars.ProfessionalStatusApproved, 150000)
		booking, err := fixture.usecase.CreateAppointment(ctx, bookingRequest(professional.ID.Hex()))
		require.NoError(t, err)

		appointmentID := booking.Appointment.ID.Hex()
		completion, err := fixture.usecase.CompletePayment(ctx, appointmentID, &requests.CompletePaymentRequest{
			PaymentID: "pay_ABC123",
			OrderID:   "order_XYZ789",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(150000), completion.Settlement.GrossAmount)
		assert.Equal(t, int64(15000), completion.Settlement.PlatformFee)
		assert.Equal(t, int64(135000), completion.Settlement.ProfessionalAmount)
		assert.Equal(t, constvars.SettlementStatusCompleted, completion.Settlement.Status)
		assert.Equal(t, "pay_ABC123", completion.Settlement.PaymentID)

		assert.Equal(t, "https://meet.example.com/consultation/"+appointmentID, completion.MeetingLink)
		assert.Equal(t, completion.MeetingLink, completion.Appointment.MeetingLink)

		assert.Equal(t, constvars.PaymentStatusCompleted, completion.Appointment.PaymentStatus)
		assert.Equal(t, "pay_ABC123", completion.Appointment.PaymentID)
		assert.True(t, completion.Appointment.PatientNotified)
		assert.True(t, completion.Appointment.ProfessionalNotified)

		assert.Equal(t, constvars.DispatchOutcomeSent, completion.PatientDispatch)
		assert.Equal(t, constvars.DispatchOutcomeSent, completion.ProfessionalDispatch)
		require.Len(t, fixture.notifications.sent, 2)
		assert.Equal(t, booking.Patient.Phone, fixture.notifications.sent[0].Phone)
		assert.Contains(t, fixture.notifications.sent[0].Message, completion.MeetingLink)
		assert.Equal(t, professional.Phone, fixture.notifications.sent[1].Phone)
		assert.Contains(t, fixture.notifications.sent[1].Message, "Vikram Shah")
	})

	t.Run("Repeated Completion Is A No Op", func(t *testing.T) {
		fixture := newBookingFixture()
		professional := fixture.seedProfessional(t, constvars.ProfessionalStatusApproved, 150000)
		booking, err := fixture.usecase.CreateAppointment(ctx, bookingRequest(professional.ID.Hex()))
		require.NoError(t, err)

		appointmentID := booking.Appointment.ID.Hex()
		request := &requests.CompletePaymentRequest{PaymentID: "pay_ABC123"}

		first, err := fixture.usecase.CompletePayment(ctx, appointmentID, request)
		require.NoError(t, err)
		second, err := fixture.usecase.CompletePayment(ctx, appointmentID, request)
		require.NoError(t, err)

		assert.Equal(t, first.Settlement.ID, second.Settlement.ID)
		assert.Equal(t, first.MeetingLink, second.MeetingLink)
		assert.Equal(t, constvars.DispatchOutcomeSkipped, second.PatientDispatch)
		assert.Equal(t, constvars.DispatchOutcomeSkipped, second.ProfessionalDispatch)
		assert.Len(t, fixture.notifications.sent, 2, "no further dispatches on replay")
		assert.Equal(t, 1, fixture.meetings.calls, "no second meeting room on replay")
		assert.Len(t, fixture.payments.byAppointment, 1)
	})

	t.Run("Existing Settlement Is Reused When Appointment Lags", func(t *testing.T) {
		fixture := newBookingFixture()
		professional := fixture.seedProfessional(t, constvars.ProfessionalStatusApproved, 150000)
		booking, err := fixture.usecase.CreateAppointment(ctx, bookingRequest(professional.ID.Hex()))
		require.NoError(t, err)

		// A settlement exists but the appointment never got flagged completed,
		// as happens when an earlier call died between the two writes.
		appointmentID := booking.Appointment.ID.Hex()
		existing, err := fixture.payments.Create(ctx, &models.Payment{
			AppointmentID:      booking.Appointment.ID,
			ProfessionalID:     professional.ID,
			PaymentID:          "pay_FIRST",
			GrossAmount:        150000,
			PlatformFee:        15000,
			ProfessionalAmount: 135000,
			Status:             constvars.SettlementStatusCompleted,
			CreatedAt:          time.Now().UTC(),
		})
		require.NoError(t, err)

		completion, err := fixture.usecase.CompletePayment(ctx, appointmentID, &requests.CompletePaymentRequest{PaymentID: "pay_RETRY"})
		require.NoError(t, err)

		assert.Equal(t, existing.ID, completion.Settlement.ID, "original settlement wins")
		assert.Equal(t, "pay_FIRST", completion.Settlement.PaymentID)
		assert.Equal(t, constvars.PaymentStatusCompleted, completion.Appointment.PaymentStatus)
		assert.NotEmpty(t, completion.MeetingLink)
	})

	t.Run("Unknown Appointment Answers Not Found", func(t *testing.T) {
		fixture := newBookingFixture()

		_, err := fixture.usecase.CompletePayment(ctx, primitive.NewObjectID().Hex(), &requests.CompletePaymentRequest{PaymentID: "pay_ABC123"})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestFindAppointmentsByProfessional(t *testing.T) {
	ctx := context.Background()
	fixture := newBookingFixture()
	professional := fixture.seedProfessional(t, constvars.ProfessionalStatusApproved, 150000)

	_, err := fixture.usecase.CreateAppointment(ctx, bookingRequest(professional.ID.Hex()))
	require.NoError(t, err)
	_, err = fixture.usecase.CreateAppointment(ctx, bookingRequest(professional.ID.Hex()))
	require.NoError(t, err)

	listed, err := fixture.usecase.FindAppointmentsByProfessional(ctx, professional.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	_, err = fixture.usecase.FindAppointmentsByProfessional(ctx, primitive.NewObjectID().Hex())
	assert.Error(t, err, "listing requires a known professional")
}
