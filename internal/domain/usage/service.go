package usage

import "context"

// Service defines the usage accounting operations
type Service interface {
	// Status evaluates the current month's usage against the user's plan
	Status(ctx context.Context, userID int64) (*Status, error)

	// ConsumeFeedbackRequest records one sent feedback request.
	// Called only after the gated action succeeded.
	ConsumeFeedbackRequest(ctx context.Context, userID int64) error

	// ConsumeSocialShare records one performed social share.
	// Called only after the gated action succeeded.
	ConsumeSocialShare(ctx context.Context, userID int64) error
}
