package feedback

import "context"

// Service defines feedback request business operations
type Service interface {
	// Send checks the user's quota, delivers the request email and
	// records the sent request. Usage is consumed only after the email
	// provider accepted the send.
	Send(ctx context.Context, userID, formID int64, recipientEmail, recipientName, message string) (*Request, error)

	// List retrieves a user's requests with pagination
	List(ctx context.Context, userID int64, limit, offset int) ([]*Request, int64, error)

	// SendReminders emails a follow-up for unanswered requests older
	// than the configured age. Reminders do not consume quota. Returns
	// the number of reminders sent.
	SendReminders(ctx context.Context) (int, error)
}
