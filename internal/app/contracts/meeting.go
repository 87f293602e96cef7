package contracts

import "context"

// MeetingService provisions a video consultation room for an appointment.
// Implementations must be deterministic per appointment so a repeated
// payment-completion call cannot mint a second room.
type MeetingService interface {
	CreateMeeting(ctx context.Context, appointmentID string) (string, error)
}
