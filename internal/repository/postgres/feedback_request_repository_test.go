package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/proofdeck/server/internal/domain/feedback"
	"github.com/proofdeck/server/internal/testutil"
)

func newTestRequest(userID int64, token string) *feedback.Request {
	return &feedback.Request{
		UserID:         userID,
		FormID:         1,
		RecipientEmail: "customer@example.com",
		RecipientName:  "Pat",
		Token:          token,
		Status:         feedback.StatusSent,
	}
}

func TestFeedbackRequestRepository_CreateAndGetByToken(t *testing.T) {
	db := Wrap(testutil.NewTestDB(t), "sqlite")
	defer testutil.CleanupDB(db.DB)

	repo := NewFeedbackRequestRepository(db)
	ctx := context.Background()

	req := newTestRequest(1, "tok-a")
	if err := repo.Create(ctx, req); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if req.ID == 0 {
		t.Error("Create() did not set request ID")
	}

	got, err := repo.GetByToken(ctx, "tok-a")
	if err != nil {
		t.Fatalf("GetByToken() error = %v", err)
	}
	if got.RecipientEmail != req.RecipientEmail {
		t.Errorf("GetByToken() RecipientEmail = %v, want %v", got.RecipientEmail, req.RecipientEmail)
	}
	if got.Status != feedback.StatusSent {
		t.Errorf("GetByToken() Status = %v, want %v", got.Status, feedback.StatusSent)
	}
	if got.ReminderSentAt != nil {
		t.Errorf("GetByToken() ReminderSentAt = %v, want nil", got.ReminderSentAt)
	}

	if _, err := repo.GetByToken(ctx, "missing"); err == nil {
		t.Error("GetByToken() with unknown token succeeded, want error")
	}
}

func TestFeedbackRequestRepository_MarkResponded(t *testing.T) {
	db := Wrap(testutil.NewTestDB(t), "sqlite")
	defer testutil.CleanupDB(db.DB)

	repo := NewFeedbackRequestRepository(db)
	ctx := context.Background()

	req := newTestRequest(1, "tok-a")
	repo.Create(ctx, req)

	if err := repo.MarkResponded(ctx, "tok-a"); err != nil {
		t.Errorf("MarkResponded() error = %v", err)
	}

	got, err := repo.GetByToken(ctx, "tok-a")
	if err != nil {
		t.Fatalf("GetByToken() error = %v", err)
	}
	if got.Status != feedback.StatusResponded {
		t.Errorf("Status = %v, want %v", got.Status, feedback.StatusResponded)
	}

	if err := repo.MarkResponded(ctx, "missing"); err == nil {
		t.Error("MarkResponded() with unknown token succeeded, want error")
	}
}

func TestFeedbackRequestRepository_Reminders(t *testing.T) {
	db := Wrap(testutil.NewTestDB(t), "sqlite")
	defer testutil.CleanupDB(db.DB)

	repo := NewFeedbackRequestRepository(db)
	ctx := context.Background()

	old := newTestRequest(1, "tok-old")
	repo.Create(ctx, old)

	answered := newTestRequest(1, "tok-answered")
	repo.Create(ctx, answered)
	repo.MarkResponded(ctx, "tok-answered")

	// Everything created above sits before a future cutoff; only the
	// unanswered request without a reminder is due.
	cutoff := time.Now().Add(time.Hour)
	due, err := repo.ListDueReminders(ctx, cutoff, 10)
	if err != nil {
		t.Fatalf("ListDueReminders() error = %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("ListDueReminders() returned %v requests, want 1", len(due))
	}
	if due[0].Token != "tok-old" {
		t.Errorf("ListDueReminders() Token = %v, want tok-old", due[0].Token)
	}

	if err := repo.MarkReminderSent(ctx, due[0].ID); err != nil {
		t.Errorf("MarkReminderSent() error = %v", err)
	}

	// A reminded request is not due again
	due, err = repo.ListDueReminders(ctx, cutoff, 10)
	if err != nil {
		t.Fatalf("ListDueReminders() after reminder error = %v", err)
	}
	if len(due) != 0 {
		t.Errorf("ListDueReminders() returned %v requests after reminder, want 0", len(due))
	}

	got, err := repo.GetByID(ctx, 1, old.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.ReminderSentAt == nil {
		t.Error("ReminderSentAt not recorded")
	}
}

func TestFeedbackRequestRepository_List(t *testing.T) {
	db := Wrap(testutil.NewTestDB(t), "sqlite")
	defer testutil.CleanupDB(db.DB)

	repo := NewFeedbackRequestRepository(db)
	ctx := context.Background()

	repo.Create(ctx, newTestRequest(1, "tok-a"))
	repo.Create(ctx, newTestRequest(1, "tok-b"))
	repo.Create(ctx, newTestRequest(2, "tok-c"))

	requests, total, err := repo.List(ctx, 1, 10, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 2 {
		t.Errorf("List() total = %v, want 2", total)
	}
	if len(requests) != 2 {
		t.Errorf("List() returned %v requests, want 2", len(requests))
	}
}
