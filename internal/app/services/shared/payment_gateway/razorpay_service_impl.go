package paymentgateway

import (
	"context"
	"fmt"

	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"github.com/razorpay/razorpay-go"
	"go.uber.org/zap"
)

type razorpayService struct {
	Client *razorpay.Client
	KeyID  string
	Log    *zap.Logger
}

// NewRazorpayService builds the gateway client. Without credentials the
// service still works but mints local order IDs instead of calling out, so
// development environments do not need a gateway account.
func NewRazorpayService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	var client *razorpay.Client
	if internalConfig.Razorpay.KeyID != "" && internalConfig.Razorpay.KeySecret != "" {
		client = razorpay.NewClient(internalConfig.Razorpay.KeyID, internalConfig.Razorpay.KeySecret)
	}
	return &razorpayService{
		Client: client,
		KeyID:  internalConfig.Razorpay.KeyID,
		Log:    logger,
	}
}

func (s *razorpayService) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*responses.GatewayOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if s.Client == nil {
		order := &responses.GatewayOrder{
			OrderID:  "order_local_" + uuid.New().String(),
			Amount:   amount,
			Currency: currency,
			Receipt:  receipt,
		}
		s.Log.Info("razorpayService.CreateOrder minted local order, gateway not configured",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderKey, order.OrderID),
		)
		return order, nil
	}

	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := s.Client.Order.Create(data, nil)
	if err != nil {
		s.Log.Error("razorpayService.CreateOrder gateway call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrGatewayCreateOrder(err)
	}

	orderID, ok := body["id"].(string)
	if !ok {
		return nil, exceptions.ErrGatewayCreateOrder(fmt.Errorf("gateway response missing order id"))
	}

	s.Log.Info("razorpayService.CreateOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderKey, orderID),
	)
	return &responses.GatewayOrder{
		OrderID:  orderID,
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}
