package postgres

import (
	"context"
	"testing"

	"github.com/proofdeck/server/internal/domain/usage"
	"github.com/proofdeck/server/internal/domain/user"
	"github.com/proofdeck/server/internal/testutil"
)

func TestUserRepository_Create(t *testing.T) {
	db := Wrap(testutil.NewTestDB(t), "sqlite")
	defer testutil.CleanupDB(db.DB)

	repo := NewUserRepository(db)

	tests := []struct {
		name    string
		user    *user.User
		wantErr bool
	}{
		{
			name: "create user successfully",
			user: &user.User{
				Email:        "test@example.com",
				CompanyName:  "Acme",
				PasswordHash: "hash",
			},
			wantErr: false,
		},
		{
			name: "create another user",
			user: &user.User{
				Email:        "another@example.com",
				CompanyName:  "Acme",
				PasswordHash: "hash",
			},
			wantErr: false,
		},
		{
			name: "duplicate email fails",
			user: &user.User{
				Email:        "test@example.com",
				CompanyName:  "Other",
				PasswordHash: "hash",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			err := repo.Create(ctx, tt.user)

			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if tt.user.ID == 0 {
					t.Error("Create() did not set user ID")
				}
				if tt.user.Plan != usage.PlanFree {
					t.Errorf("Create() Plan = %v, want %v", tt.user.Plan, usage.PlanFree)
				}
			}
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := Wrap(testutil.NewTestDB(t), "sqlite")
	defer testutil.CleanupDB(db.DB)

	repo := NewUserRepository(db)
	ctx := context.Background()

	email := "test@example.com"
	u := &user.User{Email: email, CompanyName: "Acme", PasswordHash: "hash"}
	repo.Create(ctx, u)

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{
			name:    "get existing user by email",
			email:   email,
			wantErr: false,
		},
		{
			name:    "get non-existing user by email",
			email:   "nonexistent@example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByEmail(ctx, tt.email)

			if (err != nil) != tt.wantErr {
				t.Errorf("GetByEmail() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if got == nil {
					t.Error("GetByEmail() returned nil user")
					return
				}
				if got.Email != tt.email {
					t.Errorf("GetByEmail() Email = %v, want %v", got.Email, tt.email)
				}
			}
		})
	}
}

func TestUserRepository_Update(t *testing.T) {
	db := Wrap(testutil.NewTestDB(t), "sqlite")
	defer testutil.CleanupDB(db.DB)

	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &user.User{Email: "test@example.com", CompanyName: "Acme", PasswordHash: "hash"}
	repo.Create(ctx, u)

	// Upgrade plan
	u.Plan = usage.PlanPro
	err := repo.Update(ctx, u)
	if err != nil {
		t.Errorf("Update() error = %v", err)
	}

	updated, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Errorf("GetByID() after update error = %v", err)
	}

	if updated.Plan != usage.PlanPro {
		t.Errorf("Update() Plan = %v, want %v", updated.Plan, usage.PlanPro)
	}
}
