package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/proofdeck/server/internal/domain/feedback"
	"github.com/proofdeck/server/internal/domain/form"
	"github.com/proofdeck/server/internal/domain/usage"
	"github.com/proofdeck/server/internal/domain/user"
	"github.com/proofdeck/server/internal/email"
	"github.com/proofdeck/server/internal/pkg/errors"
	"github.com/proofdeck/server/internal/pkg/logger"
	"github.com/proofdeck/server/internal/pkg/metrics"
)

const reminderBatchSize = 100

// FeedbackService implements feedback.Service
type FeedbackService struct {
	repo        feedback.Repository
	forms       form.Repository
	users       user.Repository
	usage       usage.Service
	sender      email.Sender
	frontendURL string
	afterDays   int
	logger      *logger.Logger
}

// NewFeedbackService creates a new feedback request service
func NewFeedbackService(
	repo feedback.Repository,
	forms form.Repository,
	users user.Repository,
	usageSvc usage.Service,
	sender email.Sender,
	frontendURL string,
	afterDays int,
	log *logger.Logger,
) feedback.Service {
	return &FeedbackService{
		repo:        repo,
		forms:       forms,
		users:       users,
		usage:       usageSvc,
		sender:      sender,
		frontendURL: frontendURL,
		afterDays:   afterDays,
		logger:      log,
	}
}

// Send checks the user's quota, delivers the request email and records
// the sent request. Usage is consumed only after the email provider
// accepted the send; a failed send costs nothing.
func (s *FeedbackService) Send(ctx context.Context, userID, formID int64, recipientEmail, recipientName, message string) (*feedback.Request, error) {
	f, err := s.forms.GetByID(ctx, userID, formID)
	if err != nil {
		return nil, err
	}

	status, err := s.usage.Status(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !status.CanCreateFeedbackRequest {
		metrics.RecordQuotaRejection("feedback_request")
		return nil, errors.QuotaExceeded("feedback request")
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	company := u.CompanyName
	if company == "" {
		company = u.Email
	}

	token := uuid.NewString()
	msg := email.FeedbackRequestMessage(recipientEmail, recipientName, company, message, s.responseURL(f.Slug, token))

	if err := s.sender.Send(ctx, msg); err != nil {
		metrics.RecordFeedbackEmail("request", "error")
		return nil, err
	}
	metrics.RecordFeedbackEmail("request", "sent")

	req := &feedback.Request{
		UserID:         userID,
		FormID:         formID,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Message:        message,
		Token:          token,
		Status:         feedback.StatusSent,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		s.logger.ErrorWithErr(err, "Failed to record feedback request after send")
		return nil, err
	}

	// The email is already out; a failed increment is logged, not refunded
	if err := s.usage.ConsumeFeedbackRequest(ctx, userID); err != nil {
		s.logger.ErrorWithErr(err, "Failed to consume feedback request quota")
	}

	s.logger.WithFields(map[string]interface{}{
		"request_id": req.ID,
		"user_id":    userID,
		"form_id":    formID,
	}).Info("Feedback request sent")

	return req, nil
}

// List retrieves a user's requests with pagination
func (s *FeedbackService) List(ctx context.Context, userID int64, limit, offset int) ([]*feedback.Request, int64, error) {
	return s.repo.List(ctx, userID, limit, offset)
}

// SendReminders emails a follow-up for unanswered requests older than
// the configured age. Reminders do not consume quota.
func (s *FeedbackService) SendReminders(ctx context.Context) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -s.afterDays)

	due, err := s.repo.ListDueReminders(ctx, cutoff, reminderBatchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, req := range due {
		f, err := s.forms.GetByID(ctx, req.UserID, req.FormID)
		if err != nil {
			s.logger.WithFields(map[string]interface{}{
				"request_id": req.ID,
			}).WithError(err).Warn("Skipping reminder, form unavailable")
			continue
		}

		u, err := s.users.GetByID(ctx, req.UserID)
		if err != nil {
			continue
		}
		company := u.CompanyName
		if company == "" {
			company = u.Email
		}

		msg := email.ReminderMessage(req.RecipientEmail, req.RecipientName, company, s.responseURL(f.Slug, req.Token))
		if err := s.sender.Send(ctx, msg); err != nil {
			metrics.RecordFeedbackEmail("reminder", "error")
			s.logger.WithFields(map[string]interface{}{
				"request_id": req.ID,
			}).WithError(err).Warn("Failed to send reminder")
			continue
		}
		metrics.RecordFeedbackEmail("reminder", "sent")

		if err := s.repo.MarkReminderSent(ctx, req.ID); err != nil {
			s.logger.ErrorWithErr(err, "Failed to mark reminder sent")
			continue
		}
		sent++
	}

	if sent > 0 {
		s.logger.WithFields(map[string]interface{}{
			"count": sent,
		}).Info("Reminders sent")
	}

	return sent, nil
}

func (s *FeedbackService) responseURL(slug, token string) string {
	return fmt.Sprintf("%s/f/%s?t=%s", s.frontendURL, slug, token)
}
