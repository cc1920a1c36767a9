package dto

// PlanDTO describes one plan tier in the catalog
type PlanDTO struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	PriceCentsMonthly    int      `json:"price_cents_monthly"`
	FeedbackRequestLimit int      `json:"feedback_request_limit"` // -1 = unlimited
	SocialShareLimit     int      `json:"social_share_limit"`     // -1 = unlimited
	AllowedPlatforms     []string `json:"allowed_platforms"`
}

// BillingInfoDTO is the authenticated user's current plan view
type BillingInfoDTO struct {
	Plan PlanDTO `json:"plan"`
}

// ChangePlanRequest is the plan change payload
type ChangePlanRequest struct {
	Plan string `json:"plan" validate:"required,oneof=free pro"`
}
