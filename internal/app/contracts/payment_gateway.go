package contracts

import (
	"context"

	"telecare-service/internal/pkg/dto/responses"
)

// PaymentGatewayService creates checkout orders with the payment provider.
// Amounts are minor currency units.
type PaymentGatewayService interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*responses.GatewayOrder, error)
}
