package form

import "context"

// Service defines form business operations
type Service interface {
	// Create creates a form and assigns its public slug
	Create(ctx context.Context, userID int64, title, intro, questionType string) (*Form, error)

	// GetByID retrieves a form owned by a user
	GetByID(ctx context.Context, userID, id int64) (*Form, error)

	// GetBySlug retrieves an active form for the public form page
	GetBySlug(ctx context.Context, slug string) (*Form, error)

	// Update updates title, intro and active flag
	Update(ctx context.Context, f *Form) error

	// Delete deletes a form owned by a user
	Delete(ctx context.Context, userID, id int64) error

	// List retrieves a user's forms with pagination
	List(ctx context.Context, userID int64, limit, offset int) ([]*Form, int64, error)
}
