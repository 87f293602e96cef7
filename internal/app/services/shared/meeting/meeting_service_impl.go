package meeting

import (
	"context"
	"fmt"

	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
)

type meetingService struct {
	BaseURL string
}

func NewMeetingService(internalConfig *config.InternalConfig) contracts.MeetingService {
	return &meetingService{BaseURL: internalConfig.Meeting.BaseURL}
}

// CreateMeeting derives the room URL from the appointment ID, so the same
// appointment always maps to the same room.
func (s *meetingService) CreateMeeting(ctx context.Context, appointmentID string) (string, error) {
	return fmt.Sprintf("%s/consultation/%s", s.BaseURL, appointmentID), nil
}
