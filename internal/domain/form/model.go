package form

import "time"

// Question types
const (
	QuestionRating = "rating" // 1-5 stars
	QuestionText   = "text"
	QuestionNPS    = "nps" // 0-10
	QuestionYesNo  = "yesno"
)

// Form is a feedback form owned by a user. The slug is the public
// identifier used by the hosted form page and never changes.
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

// ValidQuestionType reports whether t is a supported question type
func ValidQuestionType(t string) bool {
	switch t {
	case QuestionRating, QuestionText, QuestionNPS, QuestionYesNo:
		return true
	}
	return false
}
