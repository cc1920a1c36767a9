package client

import "time"

// User is an account on the platform
type User struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	FullName    *string `json:"full_name,omitempty"`
	CompanyName string  `json:"company_name,omitempty"`
	Plan        string  `json:"plan"`
}

// Form is a feedback form
type Form struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Intro        string    `json:"intro,omitempty"`
	QuestionType string    `json:"question_type"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Response is a submitted answer to a form
type Response struct {
	ID              int64     `json:"id"`
	FormID          int64     `json:"form_id"`
	RequestToken    *string   `json:"request_token,omitempty"`
	RespondentName  string    `json:"respondent_name,omitempty"`
	RespondentEmail string    `json:"respondent_email,omitempty"`
	Rating          *int      `json:"rating,omitempty"`
	NPSScore        *int      `json:"nps_score,omitempty"`
	YesNo           *bool     `json:"yes_no,omitempty"`
	Text            string    `json:"text,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Summary is a form's analytics summary
type Summary struct {
	FormID        int64    `json:"form_id"`
	Total         int64    `json:"total"`
	AverageRating float64  `json:"average_rating,omitempty"`
	RatingCounts  [5]int64 `json:"rating_counts"`
	NPSScore      float64  `json:"nps_score"`
	Promoters     int64    `json:"promoters"`
	Passives      int64    `json:"passives"`
	Detractors    int64    `json:"detractors"`
	YesCount      int64    `json:"yes_count"`
	NoCount       int64    `json:"no_count"`
	YesPercent    float64  `json:"yes_percent"`
}

// FeedbackRequest is an emailed invitation to leave feedback
type FeedbackRequest struct {
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

// Share is a recorded social share
type Share struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	ResponseID int64     `json:"response_id"`
	Platform   string    `json:"platform"`
	Caption    string    `json:"caption,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Testimonial is generated social-proof content
type Testimonial struct {
	ResponseID int64  `json:"response_id"`
	Quote      string `json:"quote"`
	Author     string `json:"author"`
	Rating     int    `json:"rating,omitempty"`
	Caption    string `json:"caption"`
}

// UsageStatus is the current month's usage against the plan
type UsageStatus struct {
	Plan                      string   `json:"plan"`
	Month                     string   `json:"month"`
	FeedbackRequestsUsed      int      `json:"feedback_requests_used"`
	SocialSharesUsed          int      `json:"social_shares_used"`
	CanCreateFeedbackRequest  bool     `json:"can_create_feedback_request"`
	CanShareSocial            bool     `json:"can_share_social"`
	RemainingFeedbackRequests int      `json:"remaining_feedback_requests"`
	RemainingSocialShares     int      `json:"remaining_social_shares"`
	AllowedPlatforms          []string `json:"allowed_platforms"`
}

// Plan is one tier of the plan catalog
type Plan struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	PriceCentsMonthly    int      `json:"price_cents_monthly"`
	FeedbackRequestLimit int      `json:"feedback_request_limit"` // -1 = unlimited
	SocialShareLimit     int      `json:"social_share_limit"`     // -1 = unlimited
	AllowedPlatforms     []string `json:"allowed_platforms"`
}

// BillingInfo is the account's current plan view
type BillingInfo struct {
	Plan Plan `json:"plan"`
}

// Page wraps a paginated list
type Page[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// ListOptions control pagination for list calls
type ListOptions struct {
	Page     int
	PageSize int
}

func (o ListOptions) query() string {
	q := ""
	if o.Page > 0 {
		q = addQuery(q, "page", o.Page)
	}
	if o.PageSize > 0 {
		q = addQuery(q, "page_size", o.PageSize)
	}
	return q
}
