package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/proofdeck/server/internal/api/middleware"
	"github.com/proofdeck/server/internal/pkg/logger"
	"github.com/proofdeck/server/internal/pkg/validator"
	"github.com/proofdeck/server/internal/services"
	"github.com/proofdeck/server/internal/testutil"
)

func newFormHandler(t *testing.T) (*FormHandler, *testutil.MockFormRepository) {
	t.Helper()
	repo := testutil.NewMockFormRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := services.NewFormService(repo, log)
	return NewFormHandler(service, log, validator.New()), repo
}

func authedRequest(method, target string, body []byte, userID int64) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, userID))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestFormHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "valid rating form",
			body:           `{"title":"How did we do?","question_type":"rating"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing title",
			body:           `{"question_type":"rating"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unsupported question type",
			body:           `{"title":"Quiz","question_type":"multiple_choice"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newFormHandler(t)

			req := authedRequest(http.MethodPost, "/api/v1/forms", []byte(tt.body), 1)
			rr := httptest.NewRecorder()

			handler.Create(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d (body %s)", rr.Code, tt.expectedStatus, rr.Body.String())
			}

			if rr.Code == http.StatusCreated {
				var resp struct {
					Success bool `json:"success"`
					Data    struct {
						ID   int64  `json:"id"`
						Slug string `json:"slug"`
					} `json:"data"`
				}
				if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if !resp.Success {
					t.Error("expected success envelope")
				}
				if resp.Data.Slug == "" {
					t.Error("expected a generated slug")
				}
			}
		})
	}
}

func TestFormHandler_Get_OwnershipScoped(t *testing.T) {
	handler, _ := newFormHandler(t)

	body := []byte(`{"title":"NPS survey","question_type":"nps"}`)
	rr := httptest.NewRecorder()
	handler.Create(rr, authedRequest(http.MethodPost, "/api/v1/forms", body, 1))
	if rr.Code != http.StatusCreated {
		t.Fatalf("setup create failed: %d", rr.Code)
	}

	tests := []struct {
		name           string
		userID         int64
		formID         string
		expectedStatus int
	}{
		{"owner can read", 1, "1", http.StatusOK},
		{"other user gets not found", 2, "1", http.StatusNotFound},
		{"missing form", 1, "99", http.StatusNotFound},
		{"invalid id", 1, "abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := authedRequest(http.MethodGet, "/api/v1/forms/"+tt.formID, nil, tt.userID)
			req = withURLParam(req, "id", tt.formID)
			rr := httptest.NewRecorder()

			handler.Get(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.expectedStatus)
			}
		})
	}
}

func TestFormHandler_GetBySlug_PublicPage(t *testing.T) {
	handler, repo := newFormHandler(t)

	body := []byte(`{"title":"Quick question","question_type":"yesno"}`)
	rr := httptest.NewRecorder()
	handler.Create(rr, authedRequest(http.MethodPost, "/api/v1/forms", body, 1))

	f := repo.Forms[1]

	req := httptest.NewRequest(http.MethodGet, "/api/v1/f/"+f.Slug, nil)
	req = withURLParam(req, "slug", f.Slug)
	rr = httptest.NewRecorder()

	handler.GetBySlug(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	// Deactivated forms disappear from the public page
	f.Active = false
	req = httptest.NewRequest(http.MethodGet, "/api/v1/f/"+f.Slug, nil)
	req = withURLParam(req, "slug", f.Slug)
	rr = httptest.NewRecorder()

	handler.GetBySlug(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("inactive form status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestFormHandler_List_Pagination(t *testing.T) {
	handler, _ := newFormHandler(t)

	for i := 0; i < 3; i++ {
		body := []byte(`{"title":"Form","question_type":"text"}`)
		rr := httptest.NewRecorder()
		handler.Create(rr, authedRequest(http.MethodPost, "/api/v1/forms", body, 1))
	}

	req := authedRequest(http.MethodGet, "/api/v1/forms?page=1&page_size=2", nil, 1)
	rr := httptest.NewRecorder()

	handler.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp struct {
		Data struct {
			Data       []json.RawMessage `json:"data"`
			TotalItems int64             `json:"total_items"`
			TotalPages int               `json:"total_pages"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data.Data) != 2 {
		t.Errorf("page length = %d, want 2", len(resp.Data.Data))
	}
	if resp.Data.TotalItems != 3 {
		t.Errorf("total items = %d, want 3", resp.Data.TotalItems)
	}
	if resp.Data.TotalPages != 2 {
		t.Errorf("total pages = %d, want 2", resp.Data.TotalPages)
	}

	// Second page holds the remaining form
	req = authedRequest(http.MethodGet, "/api/v1/forms?page=2&page_size=2", nil, 1)
	rr = httptest.NewRecorder()

	handler.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data.Data) != 1 {
		t.Errorf("second page length = %d, want 1", len(resp.Data.Data))
	}
}

func TestFormHandler_Delete(t *testing.T) {
	handler, _ := newFormHandler(t)

	body := []byte(`{"title":"Temp","question_type":"rating"}`)
	rr := httptest.NewRecorder()
	handler.Create(rr, authedRequest(http.MethodPost, "/api/v1/forms", body, 1))

	// Non-owner cannot delete
	req := authedRequest(http.MethodDelete, "/api/v1/forms/1", nil, 2)
	req = withURLParam(req, "id", "1")
	rr = httptest.NewRecorder()
	handler.Delete(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("non-owner delete status = %d, want %d", rr.Code, http.StatusNotFound)
	}

	req = authedRequest(http.MethodDelete, "/api/v1/forms/1", nil, 1)
	req = withURLParam(req, "id", "1")
	rr = httptest.NewRecorder()
	handler.Delete(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("owner delete status = %d, want %d", rr.Code, http.StatusOK)
	}
}
