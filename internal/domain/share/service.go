package share

import "context"

// Service defines testimonial generation and share tracking operations
type Service interface {
	// Testimonial builds shareable quote and caption text from a
	// positive response owned by the user
	Testimonial(ctx context.Context, userID, responseID int64) (*Testimonial, error)

	// Image renders the testimonial as a PNG for the given platform
	Image(ctx context.Context, userID, responseID int64) ([]byte, error)

	// Record checks platform permission and quota, then stores the
	// share. Usage is consumed only after the share row was written.
	Record(ctx context.Context, userID, responseID int64, platform, caption string) (*Share, error)

	// List retrieves a user's share history with pagination
	List(ctx context.Context, userID int64, limit, offset int) ([]*Share, int64, error)
}
