package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/proofdeck/server/internal/domain/feedback"
	"github.com/proofdeck/server/internal/domain/form"
	"github.com/proofdeck/server/internal/domain/response"
	"github.com/proofdeck/server/internal/pkg/errors"
	"github.com/proofdeck/server/internal/pkg/logger"
	"github.com/proofdeck/server/internal/pkg/metrics"
)

// ResponseService implements response.Service
type ResponseService struct {
	repo     response.Repository
	forms    form.Repository
	requests feedback.Repository
	logger   *logger.Logger
}

// NewResponseService creates a new response service
func NewResponseService(repo response.Repository, forms form.Repository, requests feedback.Repository, log *logger.Logger) response.Service {
	return &ResponseService{
		repo:     repo,
		forms:    forms,
		requests: requests,
		logger:   log,
	}
}

// Submit validates a public submission against the form's question type
// and stores it
func (s *ResponseService) Submit(ctx context.Context, formSlug string, sub response.Submission) (*response.Response, error) {
	f, err := s.forms.GetBySlug(ctx, formSlug)
	if err != nil {
		return nil, err
	}
	if !f.Active {
		return nil, errors.BadRequest("This form is no longer accepting responses")
	}

	if err := validateAnswer(f.QuestionType, sub); err != nil {
		return nil, err
	}

	resp := &response.Response{
		FormID:          f.ID,
		RespondentName:  sub.RespondentName,
		RespondentEmail: sub.RespondentEmail,
		Rating:          sub.Rating,
		NPSScore:        sub.NPSScore,
		YesNo:           sub.YesNo,
		Text:            sub.Text,
	}

	// A request token links the submission back to the emailed request.
	// The token must belong to this form.
	if sub.RequestToken != "" {
		req, err := s.requests.GetByToken(ctx, sub.RequestToken)
		if err != nil {
			return nil, errors.BadRequest("Invalid request token")
		}
		if req.FormID != f.ID {
			return nil, errors.BadRequest("Invalid request token")
		}
		token := sub.RequestToken
		resp.RequestToken = &token
	}

	if err := s.repo.Create(ctx, resp); err != nil {
		s.logger.ErrorWithErr(err, "Failed to store response")
		return nil, err
	}

	if resp.RequestToken != nil {
		if err := s.requests.MarkResponded(ctx, *resp.RequestToken); err != nil {
			s.logger.ErrorWithErr(err, "Failed to mark request responded")
		}
	}

	metrics.RecordResponse(f.QuestionType)

	s.logger.WithFields(map[string]interface{}{
		"form_id":     f.ID,
		"response_id": resp.ID,
	}).Info("Response submitted")

	return resp, nil
}

func validateAnswer(questionType string, sub response.Submission) error {
	switch questionType {
	case form.QuestionRating:
		if sub.Rating == nil {
			return errors.BadRequest("A rating is required")
		}
		if *sub.Rating < 1 || *sub.Rating > 5 {
			return errors.BadRequest("Rating must be between 1 and 5")
		}
	case form.QuestionNPS:
		if sub.NPSScore == nil {
			return errors.BadRequest("A score is required")
		}
		if *sub.NPSScore < 0 || *sub.NPSScore > 10 {
			return errors.BadRequest("Score must be between 0 and 10")
		}
	case form.QuestionYesNo:
		if sub.YesNo == nil {
			return errors.BadRequest("An answer is required")
		}
	case form.QuestionText:
		if sub.Text == "" {
			return errors.BadRequest("Text is required")
		}
	}
	return nil
}

// ListByForm retrieves responses for a form the user owns
func (s *ResponseService) ListByForm(ctx context.Context, userID, formID int64, limit, offset int) ([]*response.Response, int64, error) {
	if _, err := s.forms.GetByID(ctx, userID, formID); err != nil {
		return nil, 0, err
	}
	return s.repo.ListByForm(ctx, formID, limit, offset)
}

// Delete removes a response from one of the user's forms
func (s *ResponseService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}

// Summarize computes the analytics summary for a form the user owns
func (s *ResponseService) Summarize(ctx context.Context, userID, formID int64) (*response.Summary, error) {
	if _, err := s.forms.GetByID(ctx, userID, formID); err != nil {
		return nil, err
	}

	all, err := s.repo.AllByForm(ctx, formID)
	if err != nil {
		return nil, err
	}

	summary := &response.Summary{
		FormID: formID,
		Total:  int64(len(all)),
	}

	var ratingSum, ratingCount int64
	for _, r := range all {
		if r.Rating != nil && *r.Rating >= 1 && *r.Rating <= 5 {
			summary.RatingCounts[*r.Rating-1]++
			ratingSum += int64(*r.Rating)
			ratingCount++
		}
		if r.NPSScore != nil {
			switch {
			case *r.NPSScore >= 9:
				summary.Promoters++
			case *r.NPSScore >= 7:
				summary.Passives++
			default:
				summary.Detractors++
			}
		}
		if r.YesNo != nil {
			if *r.YesNo {
				summary.YesCount++
			} else {
				summary.NoCount++
			}
		}
	}

	if ratingCount > 0 {
		summary.AverageRating = float64(ratingSum) / float64(ratingCount)
	}

	npsTotal := summary.Promoters + summary.Passives + summary.Detractors
	if npsTotal > 0 {
		summary.NPSScore = float64(summary.Promoters-summary.Detractors) / float64(npsTotal) * 100
	}

	yesNoTotal := summary.YesCount + summary.NoCount
	if yesNoTotal > 0 {
		summary.YesPercent = float64(summary.YesCount) / float64(yesNoTotal) * 100
	}

	return summary, nil
}

// ExportCSV streams all responses of a form the user owns as CSV
func (s *ResponseService) ExportCSV(ctx context.Context, userID, formID int64, w io.Writer) error {
	if _, err := s.forms.GetByID(ctx, userID, formID); err != nil {
		return err
	}

	all, err := s.repo.AllByForm(ctx, formID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"id", "submitted_at", "respondent_name", "respondent_email", "rating", "nps_score", "yes_no", "text"}
	if err := cw.Write(header); err != nil {
		return errors.Internal("Failed to write CSV", err)
	}

	for _, r := range all {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.CreatedAt.UTC().Format(time.RFC3339),
			sanitizeCSVCell(r.RespondentName),
			sanitizeCSVCell(r.RespondentEmail),
			formatIntPtr(r.Rating),
			formatIntPtr(r.NPSScore),
			formatBoolPtr(r.YesNo),
			sanitizeCSVCell(r.Text),
		}
		if err := cw.Write(row); err != nil {
			return errors.Internal("Failed to write CSV", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Internal("Failed to write CSV", err)
	}
	return nil
}

func formatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatBoolPtr(v *bool) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%t", *v)
}

// sanitizeCSVCell neutralizes cells that spreadsheet applications would
// otherwise evaluate as formulas
func sanitizeCSVCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
