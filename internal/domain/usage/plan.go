package usage

// Plan identifiers
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// Social platforms
const (
	PlatformFacebook  = "facebook"
	PlatformLinkedIn  = "linkedin"
	PlatformTwitter   = "twitter"
	PlatformX         = "x"
	PlatformInstagram = "instagram"
)

// Unlimited marks a counter without a monthly cap
const Unlimited = -1

// PlanLimits are the monthly caps and allowed platforms for a plan tier
type PlanLimits struct {
	FeedbackRequestLimit int      `json:"feedback_request_limit"`
	SocialShareLimit     int      `json:"social_share_limit"`
	AllowedPlatforms     []string `json:"allowed_platforms"`
}

// Limits returns the limits for a plan. Unknown plan identifiers fall
// back to the free tier, the most restrictive one.
func Limits(plan string) PlanLimits {
	switch plan {
	case PlanPro:
		return PlanLimits{
			FeedbackRequestLimit: Unlimited,
			SocialShareLimit:     Unlimited,
			AllowedPlatforms: []string{
				PlatformFacebook,
				PlatformLinkedIn,
				PlatformTwitter,
				PlatformX,
				PlatformInstagram,
			},
		}
	default:
		return PlanLimits{
			FeedbackRequestLimit: 5,
			SocialShareLimit:     3,
			AllowedPlatforms: []string{
				PlatformFacebook,
				PlatformLinkedIn,
				PlatformTwitter,
				PlatformX,
			},
		}
	}
}
