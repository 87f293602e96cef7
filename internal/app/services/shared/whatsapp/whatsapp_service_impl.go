package whatsapp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type whatsAppService struct {
	BaseURL       string
	AccessToken   string
	PhoneNumberID string
	HTTPClient    *http.Client
	Log           *zap.Logger
}

func NewWhatsAppService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.NotificationService {
	return &whatsAppService{
		BaseURL:       internalConfig.WhatsApp.BaseURL,
		AccessToken:   internalConfig.WhatsApp.AccessToken,
		PhoneNumberID: internalConfig.WhatsApp.PhoneNumberID,
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.WhatsApp.TimeoutInSeconds) * time.Second,
		},
		Log: logger,
	}
}

type textMessage struct {
	MessagingProduct string `json:"messaging_product"`
	RecipientType    string `json:"recipient_type"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		PreviewURL bool   `json:"preview_url"`
		Body       string `json:"body"`
	} `json:"text"`
}

type sendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// SendMessage pushes a text message through the WhatsApp Cloud API. Missing
// credentials short-circuit to a skipped outcome without any network I/O.
func (s *whatsAppService) SendMessage(ctx context.Context, recipientPhone, message string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if s.AccessToken == "" || s.PhoneNumberID == "" {
		s.Log.Info("whatsAppService.SendMessage skipped, credentials not configured",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecipientKey, recipientPhone),
		)
		return constvars.DispatchOutcomeSkipped, nil
	}

	payload := textMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               recipientPhone,
		Type:             "text",
	}
	payload.Text.PreviewURL = true
	payload.Text.Body = message

	body, err := json.Marshal(payload)
	if err != nil {
		return constvars.DispatchOutcomeFailed, err
	}

	url := fmt.Sprintf("%s/%s/messages", s.BaseURL, s.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return constvars.DispatchOutcomeFailed, err
	}
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.AccessToken)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		s.Log.Error("whatsAppService.SendMessage request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecipientKey, recipientPhone),
			zap.Error(err),
		)
		return constvars.DispatchOutcomeFailed, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return constvars.DispatchOutcomeFailed, err
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := fmt.Errorf("whatsapp api status %d: %s", resp.StatusCode, string(respBody))
		s.Log.Error("whatsAppService.SendMessage rejected by API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecipientKey, recipientPhone),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return constvars.DispatchOutcomeFailed, apiErr
	}

	var parsed sendResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return constvars.DispatchOutcomeFailed, err
	}

	s.Log.Info("whatsAppService.SendMessage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecipientKey, recipientPhone),
	)
	return constvars.DispatchOutcomeSent, nil
}
