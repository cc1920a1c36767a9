package dto

// SendFeedbackRequestRequest is the payload for emailing a feedback
// request
type SendFeedbackRequestRequest struct {
	FormID         int64  `json:"form_id" validate:"required"`
	RecipientEmail string `json:"recipient_email" validate:"required,email"`
	RecipientName  string `json:"recipient_name" validate:"max=255"`
	Message        string `json:"message" validate:"max=2000"`
}
