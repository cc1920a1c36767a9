package response

import "context"

// Repository defines the interface for response data access
type Repository interface {
	// Create stores a submitted response
	Create(ctx context.Context, r *Response) error

	// GetByID retrieves a response belonging to one of a user's forms
	GetByID(ctx context.Context, userID, id int64) (*Response, error)

	// ListByForm retrieves a form's responses, newest first, with pagination
	ListByForm(ctx context.Context, formID int64, limit, offset int) ([]*Response, int64, error)

	// AllByForm retrieves every response for a form, oldest first.
	// Used by CSV export and analytics.
	AllByForm(ctx context.Context, formID int64) ([]*Response, error)

	// Delete deletes a response belonging to one of a user's forms
	Delete(ctx context.Context, userID, id int64) error
}
