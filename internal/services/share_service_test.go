package services

import (
	"context"
	"testing"
	"time"

	"github.com/proofdeck/server/internal/domain/form"
	"github.com/proofdeck/server/internal/domain/response"
	"github.com/proofdeck/server/internal/domain/share"
	"github.com/proofdeck/server/internal/domain/usage"
	"github.com/proofdeck/server/internal/pkg/errors"
	"github.com/proofdeck/server/internal/social"
	"github.com/proofdeck/server/internal/testutil"
)

type shareFixture struct {
	svc        share.Service
	repo       *testutil.MockShareRepository
	usage      *testutil.MockUsageRepository
	responses  *testutil.MockResponseRepository
	userID     int64
	responseID int64
}

func newShareFixture(t *testing.T, plan string, resp *response.Response) *shareFixture {
	t.Helper()
	ctx := context.Background()

	users := testutil.NewMockUserRepository()
	u := newTestUser(users, plan)

	forms := testutil.NewMockFormRepository()
	f := &form.Form{UserID: u.ID, Slug: "slug-a", Title: "Rate us", QuestionType: form.QuestionRating, Active: true}
	forms.Create(ctx, f)

	responses := testutil.NewMockResponseRepository(forms.Forms)
	resp.FormID = f.ID
	responses.Create(ctx, resp)

	usageRepo := testutil.NewMockUsageRepository()
	usageSvc := NewUsageService(users, usageRepo, testLogger())

	repo := testutil.NewMockShareRepository()

	svc := NewShareService(repo, responses, users, usageSvc,
		social.NewCaptionWriter(""), social.NewRenderer("", ""), testLogger())

	return &shareFixture{
		svc:        svc,
		repo:       repo,
		usage:      usageRepo,
		responses:  responses,
		userID:     u.ID,
		responseID: resp.ID,
	}
}

func positiveResponse() *response.Response {
	rating := 5
	return &response.Response{
		RespondentName: "Pat Doe",
		Rating:         &rating,
		Text:           "Saved us hours every week",
	}
}

func TestShareService_Testimonial(t *testing.T) {
	fx := newShareFixture(t, usage.PlanFree, positiveResponse())

	got, err := fx.svc.Testimonial(context.Background(), fx.userID, fx.responseID)
	if err != nil {
		t.Fatalf("Testimonial() error = %v", err)
	}
	if got.Quote != "Saved us hours every week" {
		t.Errorf("Quote = %v", got.Quote)
	}
	if got.Author != "Pat Doe" {
		t.Errorf("Author = %v, want Pat Doe", got.Author)
	}
	if got.Rating != 5 {
		t.Errorf("Rating = %v, want 5", got.Rating)
	}
	if got.Caption == "" {
		t.Error("Caption is empty")
	}
}

func TestShareService_Testimonial_NegativeResponseRejected(t *testing.T) {
	rating := 2
	fx := newShareFixture(t, usage.PlanFree, &response.Response{Rating: &rating, Text: "Not great"})

	if _, err := fx.svc.Testimonial(context.Background(), fx.userID, fx.responseID); err == nil {
		t.Error("Testimonial() from negative response succeeded, want error")
	}
}

func TestShareService_Image(t *testing.T) {
	fx := newShareFixture(t, usage.PlanFree, positiveResponse())

	data, err := fx.svc.Image(context.Background(), fx.userID, fx.responseID)
	if err != nil {
		t.Fatalf("Image() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("Image() returned empty data")
	}
}

func TestShareService_Record(t *testing.T) {
	fx := newShareFixture(t, usage.PlanFree, positiveResponse())
	ctx := context.Background()

	sh, err := fx.svc.Record(ctx, fx.userID, fx.responseID, usage.PlatformLinkedIn, "caption")
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if sh.ID == 0 {
		t.Error("Record() did not assign an ID")
	}

	rec, err := fx.usage.GetForMonth(ctx, fx.userID, usage.MonthKey(time.Now()))
	if err != nil {
		t.Fatalf("GetForMonth() error = %v", err)
	}
	if rec == nil || rec.SocialShares != 1 {
		t.Errorf("usage not consumed after share, got %+v", rec)
	}
}

func TestShareService_Record_PlatformGate(t *testing.T) {
	tests := []struct {
		name     string
		plan     string
		platform string
		wantCode string
	}{
		{
			name:     "instagram blocked on free",
			plan:     usage.PlanFree,
			platform: usage.PlatformInstagram,
			wantCode: errors.ErrCodeForbidden,
		},
		{
			name:     "unknown platform blocked",
			plan:     usage.PlanPro,
			platform: "myspace",
			wantCode: errors.ErrCodeForbidden,
		},
		{
			name:     "instagram allowed on pro",
			plan:     usage.PlanPro,
			platform: usage.PlatformInstagram,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newShareFixture(t, tt.plan, positiveResponse())

			_, err := fx.svc.Record(context.Background(), fx.userID, fx.responseID, tt.platform, "")

			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("Record() error = %v", err)
				}
				return
			}

			appErr, ok := err.(*errors.AppError)
			if !ok || appErr.Code != tt.wantCode {
				t.Errorf("Record() error = %v, want code %v", err, tt.wantCode)
			}
		})
	}
}

func TestShareService_Record_QuotaExceeded(t *testing.T) {
	fx := newShareFixture(t, usage.PlanFree, positiveResponse())
	ctx := context.Background()

	fx.usage.Seed(fx.userID, usage.MonthKey(time.Now()), 0, 3)

	_, err := fx.svc.Record(ctx, fx.userID, fx.responseID, usage.PlatformLinkedIn, "")
	if err == nil {
		t.Fatal("Record() over quota succeeded, want error")
	}

	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeQuotaExceeded {
		t.Errorf("Record() error = %v, want QUOTA_EXCEEDED", err)
	}
	if len(fx.repo.Shares) != 0 {
		t.Errorf("recorded %v shares over quota, want 0", len(fx.repo.Shares))
	}
}
