package client

import (
	"context"
	"fmt"
)

// FormService manages feedback forms
type FormService struct {
	client *Client
}

// CreateFormRequest is a form creation payload
type CreateFormRequest struct {
	Title        string `json:"title"`
	Intro        string `json:"intro,omitempty"`
	QuestionType string `json:"question_type"`
}

// UpdateFormRequest is a form update payload
type UpdateFormRequest struct {
	Title  string `json:"title"`
	Intro  string `json:"intro,omitempty"`
	Active bool   `json:"active"`
}

// Create creates a feedback form
func (s *FormService) Create(ctx context.Context, req CreateFormRequest) (*Form, error) {
	var f Form
	if err := s.client.doRequest(ctx, "POST", "/api/v1/forms", req, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// List retrieves the account's forms
func (s *FormService) List(ctx context.Context, opts ListOptions) (*Page[Form], error) {
	var page Page[Form]
	if err := s.client.doRequest(ctx, "GET", "/api/v1/forms"+opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get retrieves a form by ID
func (s *FormService) Get(ctx context.Context, id int64) (*Form, error) {
	var f Form
	if err := s.client.doRequest(ctx, "GET", fmt.Sprintf("/api/v1/forms/%d", id), nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// GetBySlug retrieves the public form page data by slug
func (s *FormService) GetBySlug(ctx context.Context, slug string) (*Form, error) {
	var f Form
	if err := s.client.doRequest(ctx, "GET", "/api/v1/f/"+slug, nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Update updates a form
func (s *FormService) Update(ctx context.Context, id int64, req UpdateFormRequest) (*Form, error) {
	var f Form
	if err := s.client.doRequest(ctx, "PUT", fmt.Sprintf("/api/v1/forms/%d", id), req, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Delete deletes a form and its responses
func (s *FormService) Delete(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, "DELETE", fmt.Sprintf("/api/v1/forms/%d", id), nil, nil)
}

// Summary retrieves a form's analytics summary
func (s *FormService) Summary(ctx context.Context, id int64) (*Summary, error) {
	var sum Summary
	if err := s.client.doRequest(ctx, "GET", fmt.Sprintf("/api/v1/forms/%d/summary", id), nil, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

// ExportCSV downloads all of a form's responses as CSV
func (s *FormService) ExportCSV(ctx context.Context, id int64) ([]byte, error) {
	return s.client.doRequestRaw(ctx, "GET", fmt.Sprintf("/api/v1/forms/%d/export", id))
}
