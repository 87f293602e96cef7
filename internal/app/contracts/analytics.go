package contracts

import (
	"context"

	"telecare-service/internal/pkg/dto/responses"
)

type AnalyticsUsecase interface {
	ProfessionalAnalytics(ctx context.Context, professionalID string) (*responses.ProfessionalAnalytics, error)
	PlatformOverview(ctx context.Context) (*responses.PlatformOverview, error)
}
