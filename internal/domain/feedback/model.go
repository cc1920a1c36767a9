package feedback

import "time"

// Request statuses
const (
	StatusSent      = "sent"
	StatusResponded = "responded"
)

// Request is an emailed invitation to leave feedback on a form. The
// token links an eventual response back to the request.
type Request struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	FormID         int64      `json:"form_id"`
	RecipientEmail string     `json:"recipient_email"`
	RecipientName  string     `json:"recipient_name,omitempty"`
	Message        string     `json:"message,omitempty"`
	Token          string     `json:"token"`
	Status         string     `json:"status"`
	ReminderSentAt *time.Time `json:"reminder_sent_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
