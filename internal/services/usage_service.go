package services

import (
	"context"
	"time"

	"github.com/proofdeck/server/internal/domain/usage"
	"github.com/proofdeck/server/internal/domain/user"
	"github.com/proofdeck/server/internal/pkg/logger"
)

// UsageService implements usage.Service. The month key is derived from
// the clock at call time, so counters roll over to a fresh row at the
// calendar month boundary without any scheduled reset.
type UsageService struct {
	users  user.Repository
	repo   usage.Repository
	logger *logger.Logger
	now    func() time.Time
}

// NewUsageService creates a new usage service
func NewUsageService(users user.Repository, repo usage.Repository, log *logger.Logger) usage.Service {
	return &UsageService{
		users:  users,
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
}

// Status evaluates the current month's usage against the user's plan
func (s *UsageService) Status(ctx context.Context, userID int64) (*usage.Status, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	month := usage.MonthKey(s.now())
	rec, err := s.repo.GetForMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	return usage.Evaluate(u.Plan, month, rec), nil
}

// ConsumeFeedbackRequest records one sent feedback request
func (s *UsageService) ConsumeFeedbackRequest(ctx context.Context, userID int64) error {
	return s.repo.IncrementFeedbackRequests(ctx, userID, usage.MonthKey(s.now()))
}

// ConsumeSocialShare records one performed social share
func (s *UsageService) ConsumeSocialShare(ctx context.Context, userID int64) error {
	return s.repo.IncrementSocialShares(ctx, userID, usage.MonthKey(s.now()))
}
