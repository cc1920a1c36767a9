package usage

import "context"

// Repository defines the interface for the usage ledger.
//
// Increment operations must be atomic at the storage layer: the stored
// counter equals the number of successful increment calls for the
// (user, month) pair even under concurrent callers.
type Repository interface {
	// GetForMonth retrieves the ledger row for a user and month.
	// Returns (nil, nil) when no row exists yet.
	GetForMonth(ctx context.Context, userID int64, month string) (*Record, error)

	// IncrementFeedbackRequests adds 1 to the feedback request counter,
	// creating the month's row on first use.
	IncrementFeedbackRequests(ctx context.Context, userID int64, month string) error

	// IncrementSocialShares adds 1 to the social share counter,
	// creating the month's row on first use.
	IncrementSocialShares(ctx context.Context, userID int64, month string) error
}
