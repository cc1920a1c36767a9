package services

import (
	"context"
	"fmt"

	"github.com/proofdeck/server/internal/domain/response"
	"github.com/proofdeck/server/internal/domain/share"
	"github.com/proofdeck/server/internal/domain/usage"
	"github.com/proofdeck/server/internal/domain/user"
	"github.com/proofdeck/server/internal/pkg/errors"
	"github.com/proofdeck/server/internal/pkg/logger"
	"github.com/proofdeck/server/internal/pkg/metrics"
	"github.com/proofdeck/server/internal/social"
)

// ShareService implements share.Service
type ShareService struct {
	repo      share.Repository
	responses response.Repository
	users     user.Repository
	usage     usage.Service
	captions  *social.CaptionWriter
	renderer  *social.Renderer
	logger    *logger.Logger
}

// NewShareService creates a new share service
func NewShareService(
	repo share.Repository,
	responses response.Repository,
	users user.Repository,
	usageSvc usage.Service,
	captions *social.CaptionWriter,
	renderer *social.Renderer,
	log *logger.Logger,
) share.Service {
	return &ShareService{
		repo:      repo,
		responses: responses,
		users:     users,
		usage:     usageSvc,
		captions:  captions,
		renderer:  renderer,
		logger:    log,
	}
}

// Testimonial builds shareable quote and caption text from a positive
// response owned by the user
func (s *ShareService) Testimonial(ctx context.Context, userID, responseID int64) (*share.Testimonial, error) {
	resp, err := s.responses.GetByID(ctx, userID, responseID)
	if err != nil {
		return nil, err
	}
	if !resp.Positive() {
		return nil, errors.BadRequest("Only positive responses can become testimonials")
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	t := &share.Testimonial{
		ResponseID: responseID,
		Quote:      testimonialQuote(resp),
		Author:     resp.RespondentName,
	}
	if resp.Rating != nil {
		t.Rating = *resp.Rating
	}

	caption := social.Caption(t.Quote, t.Author, u.CompanyName)
	t.Caption = s.captions.Polish(ctx, caption, "social media")

	return t, nil
}

// testimonialQuote falls back to a generated line when the response
// carries no free text
func testimonialQuote(resp *response.Response) string {
	if resp.Text != "" {
		return social.Quote(resp.Text)
	}
	if resp.Rating != nil {
		return fmt.Sprintf("Rated us %d out of 5 stars", *resp.Rating)
	}
	if resp.NPSScore != nil {
		return fmt.Sprintf("Scored us %d out of 10", *resp.NPSScore)
	}
	return "Would recommend us"
}

// Image renders the testimonial as a PNG
func (s *ShareService) Image(ctx context.Context, userID, responseID int64) ([]byte, error) {
	t, err := s.Testimonial(ctx, userID, responseID)
	if err != nil {
		return nil, err
	}

	data, err := s.renderer.Render(t)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to render testimonial image")
		return nil, errors.Internal("Failed to render testimonial image", err)
	}

	metrics.RecordTestimonialImage()
	return data, nil
}

// Record checks platform permission and quota, then stores the share.
// Usage is consumed only after the share row was written.
func (s *ShareService) Record(ctx context.Context, userID, responseID int64, platform, caption string) (*share.Share, error) {
	if _, err := s.responses.GetByID(ctx, userID, responseID); err != nil {
		return nil, err
	}

	status, err := s.usage.Status(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !status.PlatformAllowed(platform) {
		return nil, errors.Forbidden(fmt.Sprintf("Platform %s is not available on the %s plan", platform, status.Plan))
	}
	if !status.CanShareSocial {
		metrics.RecordQuotaRejection("social_share")
		return nil, errors.QuotaExceeded("social share")
	}

	sh := &share.Share{
		UserID:     userID,
		ResponseID: responseID,
		Platform:   platform,
		Caption:    caption,
	}
	if err := s.repo.Create(ctx, sh); err != nil {
		s.logger.ErrorWithErr(err, "Failed to record share")
		return nil, err
	}

	if err := s.usage.ConsumeSocialShare(ctx, userID); err != nil {
		s.logger.ErrorWithErr(err, "Failed to consume social share quota")
	}

	metrics.RecordShare(platform)

	s.logger.WithFields(map[string]interface{}{
		"share_id":    sh.ID,
		"user_id":     userID,
		"response_id": responseID,
		"platform":    platform,
	}).Info("Share recorded")

	return sh, nil
}

// List retrieves a user's share history with pagination
func (s *ShareService) List(ctx context.Context, userID int64, limit, offset int) ([]*share.Share, int64, error) {
	return s.repo.List(ctx, userID, limit, offset)
}
