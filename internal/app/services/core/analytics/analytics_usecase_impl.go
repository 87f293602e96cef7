package analytics

import (
	"context"

	"telecare-service/internal/app/contracts"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/exceptions"
)

type analyticsUsecase struct {
	ProfessionalRepository contracts.ProfessionalRepository
	AppointmentRepository  contracts.AppointmentRepository
	PaymentRepository      contracts.PaymentRepository
}

func NewAnalyticsUsecase(
	professionalRepository contracts.ProfessionalRepository,
	appointmentRepository contracts.AppointmentRepository,
	paymentRepository contracts.PaymentRepository,
) contracts.AnalyticsUsecase {
	return &analyticsUsecase{
		ProfessionalRepository: professionalRepository,
		AppointmentRepository:  appointmentRepository,
		PaymentRepository:      paymentRepository,
	}
}

func (uc *analyticsUsecase) ProfessionalAnalytics(ctx context.Context, professionalID string) (*responses.ProfessionalAnalytics, error) {
	professional, err := uc.ProfessionalRepository.FindByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, exceptions.ErrProfessionalNotFound(nil)
	}

	appointments, err := uc.AppointmentRepository.FindByProfessionalID(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	result := &responses.ProfessionalAnalytics{
		ProfessionalID:    professional.ID.Hex(),
		TotalAppointments: len(appointments),
	}
	for i := range appointments {
		switch appointments[i].PaymentStatus {
		case constvars.PaymentStatusCompleted:
			result.CompletedAppointments++
		case constvars.PaymentStatusPending:
			result.PendingAppointments++
		}
	}

	settlements, err := uc.PaymentRepository.FindByProfessionalID(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	for i := range settlements {
		result.GrossRevenue += settlements[i].GrossAmount
		result.PlatformFees += settlements[i].PlatformFee
		result.TotalEarnings += settlements[i].ProfessionalAmount
	}

	return result, nil
}

func (uc *analyticsUsecase) PlatformOverview(ctx context.Context) (*responses.PlatformOverview, error) {
	professionals, err := uc.ProfessionalRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	overview := &responses.PlatformOverview{
		TotalProfessionals: len(professionals),
	}
	for i := range professionals {
		switch professionals[i].Status {
		case constvars.ProfessionalStatusApproved:
			overview.ApprovedProfessionals++
		case constvars.ProfessionalStatusPending:
			overview.PendingProfessionals++
		case constvars.ProfessionalStatusRejected:
			overview.RejectedProfessionals++
		}
	}

	appointments, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	overview.TotalAppointments = len(appointments)

	settlements, err := uc.PaymentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	overview.CompletedPayments = len(settlements)
	for i := range settlements {
		overview.GrossVolume += settlements[i].GrossAmount
		overview.PlatformRevenue += settlements[i].PlatformFee
		overview.ProfessionalPayout += settlements[i].ProfessionalAmount
	}

	return overview, nil
}
