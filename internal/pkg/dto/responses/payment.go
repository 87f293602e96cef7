package responses

// GatewayOrder is the provider-side order descriptor. Amount is in minor
// currency units.
type GatewayOrder struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type PaymentOrder struct {
	AppointmentID string `json:"appointment_id"`
	OrderID       string `json:"order_id"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	KeyID         string `json:"key_id,omitempty"`
}
