package form

import "context"

// Repository defines the interface for form data access
type Repository interface {
	// Create creates a new form
	Create(ctx context.Context, f *Form) error

	// GetByID retrieves a form owned by a user
	GetByID(ctx context.Context, userID, id int64) (*Form, error)

	// GetBySlug retrieves a form by its public slug
	GetBySlug(ctx context.Context, slug string) (*Form, error)

	// Update updates a form
	Update(ctx context.Context, f *Form) error

	// Delete deletes a form owned by a user
	Delete(ctx context.Context, userID, id int64) error

	// List retrieves a user's forms with pagination
	List(ctx context.Context, userID int64, limit, offset int) ([]*Form, int64, error)
}
