package user

import "context"

// Service defines user business operations
type Service interface {
	// Register creates a new account with a hashed password
	Register(ctx context.Context, email, password, companyName string) (*User, error)

	// Authenticate checks credentials and returns the user on success
	Authenticate(ctx context.Context, email, password string) (*User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*User, error)

	// ChangePlan moves a user to another plan tier
	ChangePlan(ctx context.Context, userID int64, plan string) error
}
