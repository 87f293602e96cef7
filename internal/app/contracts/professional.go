package contracts

import (
	"context"

	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
)

type ProfessionalUsecase interface {
	OnboardProfessional(ctx context.Context, request *requests.OnboardProfessionalRequest) (*models.Professional, error)
	CreateProfessional(ctx context.Context, request *requests.CreateProfessionalRequest) (*models.Professional, error)
	FindAllProfessionals(ctx context.Context, statusFilter string) ([]models.Professional, error)
	FindApprovedProfessionals(ctx context.Context) ([]responses.ProfessionalProfile, error)
	FindProfessionalByID(ctx context.Context, professionalID string) (*models.Professional, error)
	FindProfessionalBySubdomain(ctx context.Context, subdomain string) (*responses.ProfessionalProfile, error)
	UpdateProfessional(ctx context.Context, professionalID string, request *requests.UpdateProfessionalRequest) (*models.Professional, error)
	ApproveProfessional(ctx context.Context, professionalID string) (*models.Professional, error)
	RejectProfessional(ctx context.Context, professionalID string) (*models.Professional, error)
	UploadProfilePicture(ctx context.Context, professionalID string, request *requests.UploadProfilePictureRequest) (*responses.ProfilePicture, error)
}

type ProfessionalRepository interface {
	EnsureIndexes(ctx context.Context) error
	// CreateWithUniqueSubdomain inserts the professional, retrying with
	// numbered subdomain suffixes until the unique index accepts one.
	CreateWithUniqueSubdomain(ctx context.Context, professional *models.Professional, baseSubdomain string) (*models.Professional, error)
	FindAll(ctx context.Context) ([]models.Professional, error)
	FindByStatus(ctx context.Context, status string) ([]models.Professional, error)
	FindByID(ctx context.Context, professionalID string) (*models.Professional, error)
	FindBySubdomain(ctx context.Context, subdomain string) (*models.Professional, error)
	Update(ctx context.Context, professional *models.Professional) (*models.Professional, error)
}
