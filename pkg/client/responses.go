package client

import (
	"context"
	"fmt"
)

// ResponseService manages form responses
type ResponseService struct {
	client *Client
}

// SubmitResponseRequest is a public form submission payload
type SubmitResponseRequest struct {
	RespondentName  string `json:"respondent_name,omitempty"`
	RespondentEmail string `json:"respondent_email,omitempty"`
	RequestToken    string `json:"request_token,omitempty"`
	Rating          *int   `json:"rating,omitempty"`
	NPSScore        *int   `json:"nps_score,omitempty"`
	YesNo           *bool  `json:"yes_no,omitempty"`
	Text            string `json:"text,omitempty"`
}

// Submit submits an answer to a public form. No authentication needed.
func (s *ResponseService) Submit(ctx context.Context, slug string, req SubmitResponseRequest) (*Response, error) {
	var resp Response
	if err := s.client.doRequest(ctx, "POST", "/api/v1/f/"+slug+"/responses", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListByForm retrieves a form's responses
func (s *ResponseService) ListByForm(ctx context.Context, formID int64, opts ListOptions) (*Page[Response], error) {
	var page Page[Response]
	path := fmt.Sprintf("/api/v1/forms/%d/responses", formID) + opts.query()
	if err := s.client.doRequest(ctx, "GET", path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Delete removes a response
func (s *ResponseService) Delete(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, "DELETE", fmt.Sprintf("/api/v1/responses/%d", id), nil, nil)
}
