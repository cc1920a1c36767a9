package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"math"
	"testing"

	"github.com/proofdeck/server/internal/domain/feedback"
	"github.com/proofdeck/server/internal/domain/form"
	"github.com/proofdeck/server/internal/domain/response"
	"github.com/proofdeck/server/internal/testutil"
)

type responseFixture struct {
	svc      response.Service
	forms    *testutil.MockFormRepository
	requests *testutil.MockFeedbackRepository
	repo     *testutil.MockResponseRepository
	userID   int64
}

func newResponseFixture(t *testing.T, questionType string) (*responseFixture, *form.Form) {
	t.Helper()
	ctx := context.Background()

	forms := testutil.NewMockFormRepository()
	f := &form.Form{UserID: 1, Slug: "slug-a", Title: "Rate us", QuestionType: questionType, Active: true}
	forms.Create(ctx, f)

	repo := testutil.NewMockResponseRepository(forms.Forms)
	requests := testutil.NewMockFeedbackRepository()

	svc := NewResponseService(repo, forms, requests, testLogger())

	return &responseFixture{svc: svc, forms: forms, requests: requests, repo: repo, userID: 1}, f
}

func TestResponseService_Submit_Validation(t *testing.T) {
	rating := func(v int) *int { return &v }
	yes := true

	tests := []struct {
		name         string
		questionType string
		sub          response.Submission
		wantErr      bool
	}{
		{
			name:         "valid rating",
			questionType: form.QuestionRating,
			sub:          response.Submission{Rating: rating(5)},
			wantErr:      false,
		},
		{
			name:         "rating missing",
			questionType: form.QuestionRating,
			sub:          response.Submission{Text: "hi"},
			wantErr:      true,
		},
		{
			name:         "rating out of range",
			questionType: form.QuestionRating,
			sub:          response.Submission{Rating: rating(6)},
			wantErr:      true,
		},
		{
			name:         "valid nps",
			questionType: form.QuestionNPS,
			sub:          response.Submission{NPSScore: rating(10)},
			wantErr:      false,
		},
		{
			name:         "nps out of range",
			questionType: form.QuestionNPS,
			sub:          response.Submission{NPSScore: rating(11)},
			wantErr:      true,
		},
		{
			name:         "valid yesno",
			questionType: form.QuestionYesNo,
			sub:          response.Submission{YesNo: &yes},
			wantErr:      false,
		},
		{
			name:         "yesno missing",
			questionType: form.QuestionYesNo,
			sub:          response.Submission{},
			wantErr:      true,
		},
		{
			name:         "valid text",
			questionType: form.QuestionText,
			sub:          response.Submission{Text: "great"},
			wantErr:      false,
		},
		{
			name:         "text empty",
			questionType: form.QuestionText,
			sub:          response.Submission{},
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx, _ := newResponseFixture(t, tt.questionType)

			_, err := fx.svc.Submit(context.Background(), "slug-a", tt.sub)
			if (err != nil) != tt.wantErr {
				t.Errorf("Submit() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResponseService_Submit_InactiveForm(t *testing.T) {
	fx, f := newResponseFixture(t, form.QuestionText)
	f.Active = false

	if _, err := fx.svc.Submit(context.Background(), "slug-a", response.Submission{Text: "hi"}); err == nil {
		t.Error("Submit() to inactive form succeeded, want error")
	}
}

func TestResponseService_Submit_MarksRequestResponded(t *testing.T) {
	fx, f := newResponseFixture(t, form.QuestionText)
	ctx := context.Background()

	req := &feedback.Request{UserID: 1, FormID: f.ID, RecipientEmail: "pat@example.com", Token: "tok-a", Status: feedback.StatusSent}
	fx.requests.Create(ctx, req)

	resp, err := fx.svc.Submit(ctx, "slug-a", response.Submission{Text: "great", RequestToken: "tok-a"})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if resp.RequestToken == nil || *resp.RequestToken != "tok-a" {
		t.Errorf("RequestToken = %v, want tok-a", resp.RequestToken)
	}
	if req.Status != feedback.StatusResponded {
		t.Errorf("request Status = %v, want %v", req.Status, feedback.StatusResponded)
	}
}

func TestResponseService_Submit_TokenFromOtherFormRejected(t *testing.T) {
	fx, _ := newResponseFixture(t, form.QuestionText)
	ctx := context.Background()

	// Token belongs to a different form
	req := &feedback.Request{UserID: 1, FormID: 999, RecipientEmail: "pat@example.com", Token: "tok-b", Status: feedback.StatusSent}
	fx.requests.Create(ctx, req)

	if _, err := fx.svc.Submit(ctx, "slug-a", response.Submission{Text: "great", RequestToken: "tok-b"}); err == nil {
		t.Error("Submit() with foreign token succeeded, want error")
	}
}

func TestResponseService_Summarize(t *testing.T) {
	fx, f := newResponseFixture(t, form.QuestionRating)
	ctx := context.Background()

	ratings := []int{5, 5, 4, 2}
	for i := range ratings {
		r := ratings[i]
		fx.repo.Create(ctx, &response.Response{FormID: f.ID, Rating: &r})
	}
	nps := []int{10, 9, 7, 3}
	for i := range nps {
		n := nps[i]
		fx.repo.Create(ctx, &response.Response{FormID: f.ID, NPSScore: &n})
	}
	yes, no := true, false
	fx.repo.Create(ctx, &response.Response{FormID: f.ID, YesNo: &yes})
	fx.repo.Create(ctx, &response.Response{FormID: f.ID, YesNo: &no})

	summary, err := fx.svc.Summarize(ctx, fx.userID, f.ID)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if summary.Total != 10 {
		t.Errorf("Total = %v, want 10", summary.Total)
	}
	if summary.AverageRating != 4.0 {
		t.Errorf("AverageRating = %v, want 4.0", summary.AverageRating)
	}
	if summary.RatingCounts[4] != 2 {
		t.Errorf("five-star count = %v, want 2", summary.RatingCounts[4])
	}
	if summary.Promoters != 2 || summary.Passives != 1 || summary.Detractors != 1 {
		t.Errorf("NPS buckets = %v/%v/%v, want 2/1/1", summary.Promoters, summary.Passives, summary.Detractors)
	}
	// (2 promoters - 1 detractor) / 4 = 25
	if math.Abs(summary.NPSScore-25.0) > 0.001 {
		t.Errorf("NPSScore = %v, want 25", summary.NPSScore)
	}
	if summary.YesPercent != 50.0 {
		t.Errorf("YesPercent = %v, want 50", summary.YesPercent)
	}
}

func TestResponseService_Summarize_UnownedForm(t *testing.T) {
	fx, f := newResponseFixture(t, form.QuestionRating)

	if _, err := fx.svc.Summarize(context.Background(), 999, f.ID); err == nil {
		t.Error("Summarize() for unowned form succeeded, want error")
	}
}

func TestResponseService_ExportCSV(t *testing.T) {
	fx, f := newResponseFixture(t, form.QuestionRating)
	ctx := context.Background()

	rating := 5
	fx.repo.Create(ctx, &response.Response{
		FormID:          f.ID,
		RespondentName:  "Pat",
		RespondentEmail: "pat@example.com",
		Rating:          &rating,
		Text:            "Great, \"really\" great",
	})

	var buf bytes.Buffer
	if err := fx.svc.ExportCSV(ctx, fx.userID, f.ID, &buf); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse exported CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("exported %v rows, want 2 (header + 1)", len(rows))
	}
	if rows[0][0] != "id" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][2] != "Pat" || rows[1][4] != "5" {
		t.Errorf("data row = %v", rows[1])
	}
	// Quotes survive the round trip
	if rows[1][7] != "Great, \"really\" great" {
		t.Errorf("text cell = %v", rows[1][7])
	}
}

func TestResponseService_ExportCSV_NeutralizesFormulas(t *testing.T) {
	fx, f := newResponseFixture(t, form.QuestionRating)
	ctx := context.Background()

	rating := 4
	fx.repo.Create(ctx, &response.Response{
		FormID:         f.ID,
		RespondentName: "=HYPERLINK(\"http://evil.example\")",
		Rating:         &rating,
		Text:           "+1 would recommend",
	})

	var buf bytes.Buffer
	if err := fx.svc.ExportCSV(ctx, fx.userID, f.ID, &buf); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse exported CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("exported %v rows, want 2 (header + 1)", len(rows))
	}
	if rows[1][2] != "'=HYPERLINK(\"http://evil.example\")" {
		t.Errorf("name cell = %q, want leading quote prefix", rows[1][2])
	}
	if rows[1][7] != "'+1 would recommend" {
		t.Errorf("text cell = %q, want leading quote prefix", rows[1][7])
	}
	// Numeric columns are not touched
	if rows[1][4] != "4" {
		t.Errorf("rating cell = %q, want 4", rows[1][4])
	}
}
