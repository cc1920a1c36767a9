package postgres

import (
	"context"
	"testing"

	"github.com/proofdeck/server/internal/domain/form"
	"github.com/proofdeck/server/internal/domain/response"
	"github.com/proofdeck/server/internal/testutil"
)

func intPtr(v int) *int { return &v }

func TestResponseRepository_CreateAndGetByID(t *testing.T) {
	db := Wrap(testutil.NewTestDB(t), "sqlite")
	defer testutil.CleanupDB(db.DB)

	forms := NewFormRepository(db)
	repo := NewResponseRepository(db)
	ctx := context.Background()

	f := &form.Form{UserID: 1, Slug: "slug-a", Title: "Rate us", QuestionType: form.QuestionRating, Active: true}
	forms.Create(ctx, f)

	resp := &response.Response{
		FormID:          f.ID,
		RespondentName:  "Pat",
		RespondentEmail: "pat@example.com",
		Rating:          intPtr(5),
		Text:            "Great product",
	}
	if err := repo.Create(ctx, resp); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if resp.ID == 0 {
		t.Error("Create() did not set response ID")
	}

	got, err := repo.GetByID(ctx, 1, resp.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Rating == nil || *got.Rating != 5 {
		t.Errorf("GetByID() Rating = %v, want 5", got.Rating)
	}
	if got.NPSScore != nil {
		t.Errorf("GetByID() NPSScore = %v, want nil", got.NPSScore)
	}
	if got.Text != "Great product" {
		t.Errorf("GetByID() Text = %v, want Great product", got.Text)
	}

	// Responses are only visible through form ownership
	if _, err := repo.GetByID(ctx, 2, resp.ID); err == nil {
		t.Error("GetByID() by non-owner succeeded, want error")
	}
}

func TestResponseRepository_ListByForm(t *testing.T) {
	db := Wrap(testutil.NewTestDB(t), "sqlite")
	defer testutil.CleanupDB(db.DB)

	forms := NewFormRepository(db)
	repo := NewResponseRepository(db)
	ctx := context.Background()

	f := &form.Form{UserID: 1, Slug: "slug-a", Title: "Rate us", QuestionType: form.QuestionRating, Active: true}
	forms.Create(ctx, f)

	for i := 1; i <= 3; i++ {
		repo.Create(ctx, &response.Response{FormID: f.ID, Rating: intPtr(i)})
	}

	responses, total, err := repo.ListByForm(ctx, f.ID, 2, 0)
	if err != nil {
		t.Fatalf("ListByForm() error = %v", err)
	}
	if total != 3 {
		t.Errorf("ListByForm() total = %v, want 3", total)
	}
	if len(responses) != 2 {
		t.Errorf("ListByForm() returned %v responses, want 2", len(responses))
	}
	// Newest first
	if *responses[0].Rating != 3 {
		t.Errorf("ListByForm() first Rating = %v, want 3", *responses[0].Rating)
	}

	all, err := repo.AllByForm(ctx, f.ID)
	if err != nil {
		t.Fatalf("AllByForm() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("AllByForm() returned %v responses, want 3", len(all))
	}
	// Oldest first
	if *all[0].Rating != 1 {
		t.Errorf("AllByForm() first Rating = %v, want 1", *all[0].Rating)
	}
}

func TestResponseRepository_Delete(t *testing.T) {
	db := Wrap(testutil.NewTestDB(t), "sqlite")
	defer testutil.CleanupDB(db.DB)

	forms := NewFormRepository(db)
	repo := NewResponseRepository(db)
	ctx := context.Background()

	f := &form.Form{UserID: 1, Slug: "slug-a", Title: "Rate us", QuestionType: form.QuestionRating, Active: true}
	forms.Create(ctx, f)

	resp := &response.Response{FormID: f.ID, Rating: intPtr(4)}
	repo.Create(ctx, resp)

	if err := repo.Delete(ctx, 2, resp.ID); err == nil {
		t.Error("Delete() by non-owner succeeded, want error")
	}

	if err := repo.Delete(ctx, 1, resp.ID); err != nil {
		t.Errorf("Delete() error = %v", err)
	}

	if _, err := repo.GetByID(ctx, 1, resp.ID); err == nil {
		t.Error("Delete() response still exists after deletion")
	}
}
