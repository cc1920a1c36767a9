package usage

import "time"

// Record is the usage ledger row: one per user per calendar month.
// Counters only ever grow; a new month gets a fresh row and the old
// one stays frozen.
type Record struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	Month            string    `json:"month"` // YYYY-MM
	FeedbackRequests int       `json:"feedback_requests"`
	SocialShares     int       `json:"social_shares"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// MonthKey returns the ledger partition key for a point in time
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// Status is the evaluator output for a user's current month
type Status struct {
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

// PlatformAllowed reports whether the status permits sharing to a platform
func (s *Status) PlatformAllowed(platform string) bool {
	for _, p := range s.AllowedPlatforms {
		if p == platform {
			return true
		}
	}
	return false
}
