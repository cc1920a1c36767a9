package share

import "time"

// Share records one social share of a testimonial derived from a response
type Share struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	ResponseID int64     `json:"response_id"`
	Platform   string    `json:"platform"`
	Caption    string    `json:"caption,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Testimonial is the generated social-proof content for a response
type Testimonial struct {
	ResponseID int64  `json:"response_id"`
	Quote      string `json:"quote"`
	Author     string `json:"author"`
	Rating     int    `json:"rating,omitempty"`
	Caption    string `json:"caption"`
}
