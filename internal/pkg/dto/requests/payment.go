package requests

type CreateOrderRequest struct {
	AppointmentID string `json:"appointment_id" validate:"required"`
}
