package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/proofdeck/server/internal/domain/usage"
	"github.com/proofdeck/server/internal/domain/user"
	"github.com/proofdeck/server/internal/pkg/logger"
	"github.com/proofdeck/server/internal/services"
	"github.com/proofdeck/server/internal/testutil"
)

func TestUsageHandler_Status(t *testing.T) {
	users := testutil.NewMockUserRepository()
	usageRepo := testutil.NewMockUsageRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := services.NewUsageService(users, usageRepo, log)
	handler := NewUsageHandler(service, log)

	u := &user.User{Email: "owner@example.com", Plan: usage.PlanFree}
	if err := users.Create(context.Background(), u); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	// Three of the five free-tier requests used
	for i := 0; i < 3; i++ {
		if err := service.ConsumeFeedbackRequest(context.Background(), u.ID); err != nil {
			t.Fatalf("consume failed: %v", err)
		}
	}

	req := authedRequest(http.MethodGet, "/api/v1/usage", nil, u.ID)
	rr := httptest.NewRecorder()

	handler.Status(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rr.Code, http.StatusOK, rr.Body.String())
	}

	var resp struct {
		Data usage.Status `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Data.Plan != usage.PlanFree {
		t.Errorf("plan = %q, want %q", resp.Data.Plan, usage.PlanFree)
	}
	if resp.Data.FeedbackRequestsUsed != 3 {
		t.Errorf("feedback requests used = %d, want 3", resp.Data.FeedbackRequestsUsed)
	}
	if resp.Data.RemainingFeedbackRequests != 2 {
		t.Errorf("remaining = %d, want 2", resp.Data.RemainingFeedbackRequests)
	}
	if !resp.Data.CanCreateFeedbackRequest {
		t.Error("expected requests to still be allowed")
	}
}

func TestUsageHandler_Status_UnknownUser(t *testing.T) {
	users := testutil.NewMockUserRepository()
	usageRepo := testutil.NewMockUsageRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	handler := NewUsageHandler(services.NewUsageService(users, usageRepo, log), log)

	req := authedRequest(http.MethodGet, "/api/v1/usage", nil, 42)
	rr := httptest.NewRecorder()

	handler.Status(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
