package client

import (
	"context"
	"fmt"
)

// ShareService manages testimonials and share tracking
type ShareService struct {
	client *Client
}

// RecordShareRequest is the payload for recording a social share
type RecordShareRequest struct {
	ResponseID int64  `json:"response_id"`
	Platform   string `json:"platform"`
	Caption    string `json:"caption,omitempty"`
}

// Testimonial generates shareable quote and caption text from a
// positive response
func (s *ShareService) Testimonial(ctx context.Context, responseID int64) (*Testimonial, error) {
	var t Testimonial
	path := fmt.Sprintf("/api/v1/responses/%d/testimonial", responseID)
	if err := s.client.doRequest(ctx, "GET", path, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Image downloads the testimonial rendered as a PNG
func (s *ShareService) Image(ctx context.Context, responseID int64) ([]byte, error) {
	return s.client.doRequestRaw(ctx, "GET", fmt.Sprintf("/api/v1/responses/%d/testimonial/image", responseID))
}

// Record stores a performed social share. Counts against the monthly
// quota and the plan's platform list.
func (s *ShareService) Record(ctx context.Context, req RecordShareRequest) (*Share, error) {
	var sh Share
	if err := s.client.doRequest(ctx, "POST", "/api/v1/shares", req, &sh); err != nil {
		return nil, err
	}
	return &sh, nil
}

// List retrieves the account's share history
func (s *ShareService) List(ctx context.Context, opts ListOptions) (*Page[Share], error) {
	var page Page[Share]
	if err := s.client.doRequest(ctx, "GET", "/api/v1/shares"+opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
