package contracts

import "context"

// NotificationService delivers a text message to a phone number. Outcome is
// one of the dispatch outcome constants; dispatch failure is reported, never
// retried.
type NotificationService interface {
	SendMessage(ctx context.Context, recipientPhone, message string) (outcome string, err error)
}
