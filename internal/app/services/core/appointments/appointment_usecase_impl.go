package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
)

const meetingTimeFormat = "Mon, 02 Jan 2006 at 15:04 MST"

type appointmentUsecase struct {
	AppointmentRepository  contracts.AppointmentRepository
	ProfessionalRepository contracts.ProfessionalRepository
	PatientRepository      contracts.PatientRepository
	PaymentRepository      contracts.PaymentRepository
	MeetingService         contracts.MeetingService
	NotificationService    contracts.NotificationService
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	professionalRepository contracts.ProfessionalRepository,
	patientRepository contracts.PatientRepository,
	paymentRepository contracts.PaymentRepository,
	meetingService contracts.MeetingService,
	notificationService contracts.NotificationService,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository:  appointmentRepository,
		ProfessionalRepository: professionalRepository,
		PatientRepository:      patientRepository,
		PaymentRepository:      paymentRepository,
		MeetingService:         meetingService,
		NotificationService:    notificationService,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*responses.AppointmentBooking, error) {
	professional, err := uc.ProfessionalRepository.FindByID(ctx, request.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, exceptions.ErrProfessionalNotFound(nil)
	}
	// Unapproved professionals are invisible to the public, bookings against
	// them answer the same as a missing one.
	if professional.Status != constvars.ProfessionalStatusApproved {
		return nil, exceptions.ErrProfessionalNotApproved(nil)
	}

	appointmentDate, err := time.Parse(time.RFC3339, request.AppointmentDate)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient := &models.Patient{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Phone:     request.Phone,
		Gender:    request.Gender,
		Age:       request.Age,
		CreatedAt: time.Now().UTC(),
	}
	patient, err = uc.PatientRepository.Create(ctx, patient)
	if err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		ProfessionalID:   professional.ID,
		PatientID:        patient.ID,
		AppointmentDate:  appointmentDate,
		ReferralSource:   request.ReferralSource,
		IssueDescription: request.IssueDescription,
		PaymentStatus:    constvars.PaymentStatusPending,
		Status:           constvars.AppointmentStatusScheduled,
		CreatedAt:        time.Now().UTC(),
	}
	appointment, err = uc.AppointmentRepository.Create(ctx, appointment)
	if err != nil {
		return nil, err
	}

	return &responses.AppointmentBooking{Appointment: appointment, Patient: patient}, nil
}

func (uc *appointmentUsecase) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) FindAppointmentsByProfessional(ctx context.Context, professionalID string) ([]models.Appointment, error) {
	professional, err := uc.ProfessionalRepository.FindByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, exceptions.ErrProfessionalNotFound(nil)
	}
	return uc.AppointmentRepository.FindByProfessionalID(ctx, professionalID)
}

// CompletePayment settles the appointment, provisions the meeting room and
// notifies both parties. Calling it again for an already completed
// appointment answers with the current state and touches nothing.
func (uc *appointmentUsecase) CompletePayment(ctx context.Context, appointmentID string, request *requests.CompletePaymentRequest) (*responses.PaymentCompletion, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	if appointment.PaymentStatus == constvars.PaymentStatusCompleted {
		settlement, err := uc.PaymentRepository.FindByAppointmentID(ctx, appointmentID)
		if err != nil {
			return nil, err
		}
		return &responses.PaymentCompletion{
			Appointment:          appointment,
			Settlement:           settlement,
			MeetingLink:          appointment.MeetingLink,
			PatientDispatch:      constvars.DispatchOutcomeSkipped,
			ProfessionalDispatch: constvars.DispatchOutcomeSkipped,
		}, nil
	}

	professional, err := uc.ProfessionalRepository.FindByID(ctx, appointment.ProfessionalID.Hex())
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, exceptions.ErrProfessionalNotFound(nil)
	}

	platformFee, professionalAmount := utils.SplitGross(professional.ConsultingFee)
	settlement := &models.Payment{
		AppointmentID:      appointment.ID,
		ProfessionalID:     professional.ID,
		PaymentID:          request.PaymentID,
		OrderID:            request.OrderID,
		GrossAmount:        professional.ConsultingFee,
		PlatformFee:        platformFee,
		ProfessionalAmount: professionalAmount,
		Status:             constvars.SettlementStatusCompleted,
		CreatedAt:          time.Now().UTC(),
	}

	settlement, err = uc.PaymentRepository.Create(ctx, settlement)
	if err != nil {
		// A settlement that already exists means a concurrent or earlier call
		// got here first. Reuse it and finish the remaining steps.
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusConflict {
			settlement, err = uc.PaymentRepository.FindByAppointmentID(ctx, appointmentID)
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	meetingLink, err := uc.MeetingService.CreateMeeting(ctx, appointment.ID.Hex())
	if err != nil {
		return nil, err
	}

	patientDispatch, professionalDispatch := uc.notifyParties(ctx, appointment, professional, meetingLink)

	appointment.PaymentID = request.PaymentID
	appointment.PaymentStatus = constvars.PaymentStatusCompleted
	appointment.MeetingLink = meetingLink
	appointment.PatientNotified = true
	appointment.ProfessionalNotified = true
	appointment, err = uc.AppointmentRepository.Update(ctx, appointment)
	if err != nil {
		return nil, err
	}

	return &responses.PaymentCompletion{
		Appointment:          appointment,
		Settlement:           settlement,
		MeetingLink:          meetingLink,
		PatientDispatch:      patientDispatch,
		ProfessionalDispatch: professionalDispatch,
	}, nil
}

// notifyParties attempts both WhatsApp dispatches. Failures degrade to an
// outcome value, the completion itself never fails because of them.
func (uc *appointmentUsecase) notifyParties(ctx context.Context, appointment *models.Appointment, professional *models.Professional, meetingLink string) (string, string) {
	patientDispatch := constvars.DispatchOutcomeSkipped
	professionalDispatch := constvars.DispatchOutcomeSkipped

	when := appointment.AppointmentDate.Format(meetingTimeFormat)

	patient, err := uc.PatientRepository.FindByID(ctx, appointment.PatientID.Hex())
	if err == nil && patient != nil {
		message := fmt.Sprintf(constvars.PatientBookingMessageTemplate, patient.FirstName, when, meetingLink)
		patientDispatch, _ = uc.NotificationService.SendMessage(ctx, patient.Phone, message)

		professionalMessage := fmt.Sprintf(constvars.ProfessionalBookingMessageTemplate,
			patient.FirstName+" "+patient.LastName, when, meetingLink)
		professionalDispatch, _ = uc.NotificationService.SendMessage(ctx, professional.Phone, professionalMessage)
	}

	return patientDispatch, professionalDispatch
}
