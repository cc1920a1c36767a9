package client

import "context"

// RequestService manages emailed feedback requests
type RequestService struct {
	client *Client
}

// SendRequestRequest is the payload for sending a feedback request
type SendRequestRequest struct {
	FormID         int64  `json:"form_id"`
	RecipientEmail string `json:"recipient_email"`
	RecipientName  string `json:"recipient_name,omitempty"`
	Message        string `json:"message,omitempty"`
}

// Send emails a feedback request. Counts against the monthly quota;
// check the returned error with IsQuotaExceeded.
func (s *RequestService) Send(ctx context.Context, req SendRequestRequest) (*FeedbackRequest, error) {
	var fr FeedbackRequest
	if err := s.client.doRequest(ctx, "POST", "/api/v1/requests", req, &fr); err != nil {
		return nil, err
	}
	return &fr, nil
}

// List retrieves the account's feedback requests
func (s *RequestService) List(ctx context.Context, opts ListOptions) (*Page[FeedbackRequest], error) {
	var page Page[FeedbackRequest]
	if err := s.client.doRequest(ctx, "GET", "/api/v1/requests"+opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
