package response

import (
	"context"
	"io"
)

// Submission carries a public form submission before validation
type Submission struct {
	RespondentName  string
	RespondentEmail string
	RequestToken    string
	Rating          *int
	NPSScore        *int
	YesNo           *bool
	Text            string
}

// Service defines response business operations
type Service interface {
	// Submit validates a public submission against the form's question
	// type and stores it. Marks the originating feedback request as
	// responded when a request token is present.
	Submit(ctx context.Context, formSlug string, sub Submission) (*Response, error)

	// ListByForm retrieves responses for a form the user owns
	ListByForm(ctx context.Context, userID, formID int64, limit, offset int) ([]*Response, int64, error)

	// Delete removes a response from one of the user's forms
	Delete(ctx context.Context, userID, id int64) error

	// Summarize computes the analytics summary for a form the user owns
	Summarize(ctx context.Context, userID, formID int64) (*Summary, error)

	// ExportCSV streams all responses of a form the user owns as CSV
	ExportCSV(ctx context.Context, userID, formID int64, w io.Writer) error
}
