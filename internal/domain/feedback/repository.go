package feedback

import (
	"context"
	"time"
)

// Repository defines the interface for feedback request data access
type Repository interface {
	// Create stores a new request
	Create(ctx context.Context, r *Request) error

	// GetByID retrieves a request owned by a user
	GetByID(ctx context.Context, userID, id int64) (*Request, error)

	// GetByToken retrieves a request by its response-link token
	GetByToken(ctx context.Context, token string) (*Request, error)

	// List retrieves a user's requests, newest first, with pagination
	List(ctx context.Context, userID int64, limit, offset int) ([]*Request, int64, error)

	// MarkResponded flips a request to the responded status
	MarkResponded(ctx context.Context, token string) error

	// ListDueReminders retrieves requests still unanswered that were
	// created before the cutoff and have not been reminded yet
	ListDueReminders(ctx context.Context, cutoff time.Time, limit int) ([]*Request, error)

	// MarkReminderSent records that a reminder email went out
	MarkReminderSent(ctx context.Context, id int64) error
}
