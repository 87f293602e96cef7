package contracts

import (
	"context"

	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
)

type TestimonialUsecase interface {
	CreateTestimonial(ctx context.Context, request *requests.CreateTestimonialRequest) (*models.Testimonial, error)
	FindTestimonialsByProfessional(ctx context.Context, professionalID string) ([]models.Testimonial, error)
}

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *models.Testimonial) (*models.Testimonial, error)
	FindByProfessionalID(ctx context.Context, professionalID string) ([]models.Testimonial, error)
}
