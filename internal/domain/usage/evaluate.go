package usage

// Evaluate derives permission flags and remaining quota from a plan and
// the month's ledger row. A nil record means no counter has been touched
// this month and is treated as all zeroes; evaluation never creates rows.
func Evaluate(plan, month string, rec *Record) *Status {
	limits := Limits(plan)

	var requestsUsed, sharesUsed int
	if rec != nil {
		requestsUsed = rec.FeedbackRequests
		sharesUsed = rec.SocialShares
	}

	return &Status{
		Plan:                      plan,
		Month:                     month,
		FeedbackRequestsUsed:      requestsUsed,
		SocialSharesUsed:          sharesUsed,
		CanCreateFeedbackRequest:  allowed(limits.FeedbackRequestLimit, requestsUsed),
		CanShareSocial:            allowed(limits.SocialShareLimit, sharesUsed),
		RemainingFeedbackRequests: remaining(limits.FeedbackRequestLimit, requestsUsed),
		RemainingSocialShares:     remaining(limits.SocialShareLimit, sharesUsed),
		AllowedPlatforms:          limits.AllowedPlatforms,
	}
}

func allowed(limit, used int) bool {
	return limit == Unlimited || used < limit
}

func remaining(limit, used int) int {
	if limit == Unlimited {
		return Unlimited
	}
	if used >= limit {
		return 0
	}
	return limit - used
}
