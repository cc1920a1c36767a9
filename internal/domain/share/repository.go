package share

import "context"

// Repository defines the interface for share data access
type Repository interface {
	// Create stores a recorded share
	Create(ctx context.Context, s *Share) error

	// List retrieves a user's shares, newest first, with pagination
	List(ctx context.Context, userID int64, limit, offset int) ([]*Share, int64, error)
}
