package contracts

import (
	"context"

	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
)

type AdminUsecase interface {
	Login(ctx context.Context, request *requests.AdminLoginRequest) (*responses.AdminLogin, error)
	// EnsureDefaultAdmin seeds the configured operator account when the
	// collection has no matching username.
	EnsureDefaultAdmin(ctx context.Context) error
}

type AdminRepository interface {
	Create(ctx context.Context, admin *models.AdminUser) (*models.AdminUser, error)
	FindByUsername(ctx context.Context, username string) (*models.AdminUser, error)
}
