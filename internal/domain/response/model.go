package response

import "time"

// Response is a single submitted answer to a feedback form. Exactly one
// of the answer fields is set, matching the form's question type.
type Response struct {
	ID              int64      `json:"id"`
	FormID          int64      `json:"form_id"`
	RequestToken    *string    `json:"request_token,omitempty"` // set when the respondent came from an emailed request
	RespondentName  string     `json:"respondent_name,omitempty"`
	RespondentEmail string     `json:"respondent_email,omitempty"`
	Rating          *int       `json:"rating,omitempty"`    // 1-5
	NPSScore        *int       `json:"nps_score,omitempty"` // 0-10
	YesNo           *bool      `json:"yes_no,omitempty"`
	Text            string     `json:"text,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Positive reports whether the response qualifies as social proof:
// rating >= 4, NPS promoter (>= 9), or an affirmative yes/no answer.
func (r *Response) Positive() bool {
	if r.Rating != nil {
		return *r.Rating >= 4
	}
	if r.NPSScore != nil {
		return *r.NPSScore >= 9
	}
	if r.YesNo != nil {
		return *r.YesNo
	}
	return false
}

// Summary aggregates a form's responses for the analytics view
type Summary struct {
	FormID        int64    `json:"form_id"`
	Total         int64    `json:"total"`
	AverageRating float64  `json:"average_rating,omitempty"`
	RatingCounts  [5]int64 `json:"rating_counts"` // index 0 = 1 star
	NPSScore      float64  `json:"nps_score"`     // %promoters - %detractors
	Promoters     int64    `json:"promoters"`
	Passives      int64    `json:"passives"`
	Detractors    int64    `json:"detractors"`
	YesCount      int64    `json:"yes_count"`
	NoCount       int64    `json:"no_count"`
	YesPercent    float64  `json:"yes_percent"`
}
