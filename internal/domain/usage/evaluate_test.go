package usage

import (
	"reflect"
	"testing"
	"time"
)

func TestMonthKey(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{
			name: "mid month",
			at:   time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC),
			want: "2025-03",
		},
		{
			name: "last second of month",
			at:   time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC),
			want: "2025-01",
		},
		{
			name: "first second of next month",
			at:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			want: "2025-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthKey(tt.at); got != tt.want {
				t.Errorf("MonthKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLimits_UnknownPlanFallsBackToFree(t *testing.T) {
	free := Limits(PlanFree)

	for _, plan := range []string{"", "enterprise", "FREE", "trial"} {
		if got := Limits(plan); !reflect.DeepEqual(got, free) {
			t.Errorf("Limits(%q) = %+v, want free tier %+v", plan, got, free)
		}
	}
}

func TestEvaluate_NoRecord(t *testing.T) {
	status := Evaluate(PlanFree, "2025-03", nil)

	if !status.CanCreateFeedbackRequest {
		t.Error("Evaluate() with no record should allow feedback requests")
	}
	if !status.CanShareSocial {
		t.Error("Evaluate() with no record should allow social shares")
	}
	if status.RemainingFeedbackRequests != 5 {
		t.Errorf("RemainingFeedbackRequests = %d, want 5", status.RemainingFeedbackRequests)
	}
	if status.RemainingSocialShares != 3 {
		t.Errorf("RemainingSocialShares = %d, want 3", status.RemainingSocialShares)
	}
	if status.FeedbackRequestsUsed != 0 || status.SocialSharesUsed != 0 {
		t.Error("Evaluate() with no record should report zero usage")
	}
}

func TestEvaluate_FreePlanLimits(t *testing.T) {
	tests := []struct {
		name          string
		used          int
		wantCan       bool
		wantRemaining int
	}{
		{name: "unused", used: 0, wantCan: true, wantRemaining: 5},
		{name: "one below limit", used: 4, wantCan: true, wantRemaining: 1},
		{name: "at limit", used: 5, wantCan: false, wantRemaining: 0},
		{name: "over limit", used: 9, wantCan: false, wantRemaining: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &Record{UserID: 1, Month: "2025-03", FeedbackRequests: tt.used}
			status := Evaluate(PlanFree, "2025-03", rec)

			if status.CanCreateFeedbackRequest != tt.wantCan {
				t.Errorf("CanCreateFeedbackRequest = %v, want %v", status.CanCreateFeedbackRequest, tt.wantCan)
			}
			if status.RemainingFeedbackRequests != tt.wantRemaining {
				t.Errorf("RemainingFeedbackRequests = %d, want %d", status.RemainingFeedbackRequests, tt.wantRemaining)
			}
			if status.RemainingFeedbackRequests < 0 {
				t.Error("remaining quota must never be negative for a finite limit")
			}
		})
	}
}

func TestEvaluate_ProPlanUnlimited(t *testing.T) {
	rec := &Record{UserID: 1, Month: "2025-03", FeedbackRequests: 100000, SocialShares: 100000}
	status := Evaluate(PlanPro, "2025-03", rec)

	if !status.CanCreateFeedbackRequest || !status.CanShareSocial {
		t.Error("unlimited plan must always allow gated actions")
	}
	if status.RemainingFeedbackRequests != Unlimited {
		t.Errorf("RemainingFeedbackRequests = %d, want %d", status.RemainingFeedbackRequests, Unlimited)
	}
	if status.RemainingSocialShares != Unlimited {
		t.Errorf("RemainingSocialShares = %d, want %d", status.RemainingSocialShares, Unlimited)
	}
}

func TestEvaluate_Pure(t *testing.T) {
	rec := &Record{UserID: 7, Month: "2025-06", FeedbackRequests: 2, SocialShares: 1}

	first := Evaluate(PlanFree, "2025-06", rec)
	second := Evaluate(PlanFree, "2025-06", rec)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Evaluate() is not pure: %+v != %+v", first, second)
	}
}

func TestStatus_PlatformAllowed(t *testing.T) {
	status := Evaluate(PlanFree, "2025-03", nil)

	for _, p := range []string{PlatformFacebook, PlatformLinkedIn, PlatformTwitter, PlatformX} {
		if !status.PlatformAllowed(p) {
			t.Errorf("free plan should allow platform %s", p)
		}
	}
	if status.PlatformAllowed(PlatformInstagram) {
		t.Error("free plan must reject instagram regardless of remaining quota")
	}

	pro := Evaluate(PlanPro, "2025-03", nil)
	if !pro.PlatformAllowed(PlatformInstagram) {
		t.Error("pro plan should allow instagram")
	}
}
