package testimonials

import (
	"context"
	"time"

	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testimonialUsecase struct {
	TestimonialRepository  contracts.TestimonialRepository
	ProfessionalRepository contracts.ProfessionalRepository
}

func NewTestimonialUsecase(
	testimonialRepository contracts.TestimonialRepository,
	professionalRepository contracts.ProfessionalRepository,
) contracts.TestimonialUsecase {
	return &testimonialUsecase{
		TestimonialRepository:  testimonialRepository,
		ProfessionalRepository: professionalRepository,
	}
}

func (uc *testimonialUsecase) CreateTestimonial(ctx context.Context, request *requests.CreateTestimonialRequest) (*models.Testimonial, error) {
	professional, err := uc.ProfessionalRepository.FindByID(ctx, request.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, exceptions.ErrProfessionalNotFound(nil)
	}

	professionalID, err := primitive.ObjectIDFromHex(request.ProfessionalID)
	if err != nil {
		return nil, exceptions.ErrProfessionalNotFound(err)
	}

	testimonial := &models.Testimonial{
		ProfessionalID: professionalID,
		PatientName:    request.PatientName,
		Rating:         request.Rating,
		Comment:        request.Comment,
		CreatedAt:      time.Now().UTC(),
	}
	return uc.TestimonialRepository.Create(ctx, testimonial)
}

func (uc *testimonialUsecase) FindTestimonialsByProfessional(ctx context.Context, professionalID string) ([]models.Testimonial, error) {
	professional, err := uc.ProfessionalRepository.FindByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, exceptions.ErrProfessionalNotFound(nil)
	}
	return uc.TestimonialRepository.FindByProfessionalID(ctx, professionalID)
}
