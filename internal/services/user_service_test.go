package services

import (
	"context"
	"testing"

	"github.com/proofdeck/server/internal/domain/usage"
	"github.com/proofdeck/server/internal/testutil"
)

func TestUserService_Register(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	svc := NewUserService(repo, 4, testLogger())
	ctx := context.Background()

	u, err := svc.Register(ctx, "new@example.com", "password123", "Acme")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if u.ID == 0 {
		t.Error("Register() did not assign an ID")
	}
	if u.Plan != usage.PlanFree {
		t.Errorf("Register() Plan = %v, want %v", u.Plan, usage.PlanFree)
	}
	if u.PasswordHash == "password123" {
		t.Error("Register() stored the plaintext password")
	}

	// Duplicate email
	if _, err := svc.Register(ctx, "new@example.com", "password123", "Other"); err == nil {
		t.Error("Register() with duplicate email succeeded, want error")
	}
}

func TestUserService_Authenticate(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	svc := NewUserService(repo, 4, testLogger())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "new@example.com", "password123", "Acme"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{
			name:     "valid credentials",
			email:    "new@example.com",
			password: "password123",
			wantErr:  false,
		},
		{
			name:     "wrong password",
			email:    "new@example.com",
			password: "wrong",
			wantErr:  true,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password123",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Authenticate(ctx, tt.email, tt.password)

			if (err != nil) != tt.wantErr {
				t.Errorf("Authenticate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && got.Email != tt.email {
				t.Errorf("Authenticate() Email = %v, want %v", got.Email, tt.email)
			}
		})
	}
}

func TestUserService_ChangePlan(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	svc := NewUserService(repo, 4, testLogger())
	ctx := context.Background()

	u, err := svc.Register(ctx, "new@example.com", "password123", "Acme")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := svc.ChangePlan(ctx, u.ID, "enterprise"); err == nil {
		t.Error("ChangePlan() with unknown plan succeeded, want error")
	}

	if err := svc.ChangePlan(ctx, u.ID, usage.PlanPro); err != nil {
		t.Errorf("ChangePlan() error = %v", err)
	}

	updated, err := svc.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if updated.Plan != usage.PlanPro {
		t.Errorf("Plan = %v after upgrade, want %v", updated.Plan, usage.PlanPro)
	}
}
