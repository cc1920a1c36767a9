package services

import (
	"context"

	"github.com/proofdeck/server/internal/auth"
	"github.com/proofdeck/server/internal/domain/usage"
	"github.com/proofdeck/server/internal/domain/user"
	"github.com/proofdeck/server/internal/pkg/errors"
	"github.com/proofdeck/server/internal/pkg/logger"
)

// UserService implements user.Service
type UserService struct {
	repo       user.Repository
	bcryptCost int
	logger     *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(repo user.Repository, bcryptCost int, log *logger.Logger) user.Service {
	return &UserService{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     log,
	}
}

// Register creates a new account on the free plan
func (s *UserService) Register(ctx context.Context, email, password, companyName string) (*user.User, error) {
	if existing, _ := s.repo.GetByEmail(ctx, email); existing != nil {
		return nil, errors.Conflict("Email is already registered")
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to hash password")
		return nil, errors.Internal("Failed to create account", err)
	}

	u := &user.User{
		Email:        email,
		CompanyName:  companyName,
		PasswordHash: hash,
		Plan:         usage.PlanFree,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create user")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": u.ID,
		"email":   u.Email,
	}).Info("User registered")

	return u, nil
}

// Authenticate checks credentials and returns the user on success
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.Unauthorized("Invalid email or password")
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, errors.Unauthorized("Invalid email or password")
	}

	return u, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

// ChangePlan moves a user to another plan tier
func (s *UserService) ChangePlan(ctx context.Context, userID int64, plan string) error {
	if plan != usage.PlanFree && plan != usage.PlanPro {
		return errors.BadRequest("Unknown plan: " + plan)
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	u.Plan = plan
	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.ErrorWithErr(err, "Failed to change plan")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": userID,
		"plan":    plan,
	}).Info("User plan changed")

	return nil
}
