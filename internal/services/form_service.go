package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/proofdeck/server/internal/domain/form"
	"github.com/proofdeck/server/internal/pkg/errors"
	"github.com/proofdeck/server/internal/pkg/logger"
)

// FormService implements form.Service
type FormService struct {
	repo   form.Repository
	logger *logger.Logger
}

// NewFormService creates a new form service
func NewFormService(repo form.Repository, log *logger.Logger) form.Service {
	return &FormService{
		repo:   repo,
		logger: log,
	}
}

// Create creates a form and assigns its public slug
func (s *FormService) Create(ctx context.Context, userID int64, title, intro, questionType string) (*form.Form, error) {
	if title == "" {
		return nil, errors.BadRequest("Title is required")
	}
	if !form.ValidQuestionType(questionType) {
		return nil, errors.BadRequest("Unknown question type: " + questionType)
	}

	f := &form.Form{
		UserID:       userID,
		Slug:         uuid.NewString(),
		Title:        title,
		Intro:        intro,
		QuestionType: questionType,
		Active:       true,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create form")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"form_id": f.ID,
		"user_id": userID,
		"slug":    f.Slug,
	}).Info("Form created")

	return f, nil
}

// GetByID retrieves a form owned by a user
func (s *FormService) GetByID(ctx context.Context, userID, id int64) (*form.Form, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// GetBySlug retrieves an active form for the public form page
func (s *FormService) GetBySlug(ctx context.Context, slug string) (*form.Form, error) {
	f, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !f.Active {
		return nil, errors.NotFound("Form")
	}
	return f, nil
}

// Update updates title, intro and active flag
func (s *FormService) Update(ctx context.Context, f *form.Form) error {
	if f.Title == "" {
		return errors.BadRequest("Title is required")
	}
	return s.repo.Update(ctx, f)
}

// Delete deletes a form owned by a user
func (s *FormService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"form_id": id,
		"user_id": userID,
	}).Info("Form deleted")

	return nil
}

// List retrieves a user's forms with pagination
func (s *FormService) List(ctx context.Context, userID int64, limit, offset int) ([]*form.Form, int64, error) {
	return s.repo.List(ctx, userID, limit, offset)
}
