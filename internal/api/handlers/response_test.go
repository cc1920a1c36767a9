package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/proofdeck/server/internal/domain/form"
	"github.com/proofdeck/server/internal/pkg/logger"
	"github.com/proofdeck/server/internal/pkg/validator"
	"github.com/proofdeck/server/internal/services"
	"github.com/proofdeck/server/internal/testutil"
)

func newResponseHandler(t *testing.T) (*ResponseHandler, *testutil.MockFormRepository) {
	t.Helper()
	forms := testutil.NewMockFormRepository()
	responses := testutil.NewMockResponseRepository(forms.Forms)
	requests := testutil.NewMockFeedbackRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := services.NewResponseService(responses, forms, requests, log)
	return NewResponseHandler(service, log, validator.New()), forms
}

func seedForm(t *testing.T, forms *testutil.MockFormRepository, questionType string) *form.Form {
	t.Helper()
	f := &form.Form{
		UserID:       1,
		Slug:         "test-slug",
		Title:        "Test form",
		QuestionType: questionType,
		Active:       true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := forms.Create(context.Background(), f); err != nil {
		t.Fatalf("failed to seed form: %v", err)
	}
	return f
}

func TestResponseHandler_Submit(t *testing.T) {
	tests := []struct {
		name           string
		questionType   string
		body           string
		expectedStatus int
	}{
		{
			name:           "valid rating",
			questionType:   form.QuestionRating,
			body:           `{"rating":5,"respondent_name":"Ada"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "rating out of range",
			questionType:   form.QuestionRating,
			body:           `{"rating":6}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "valid nps",
			questionType:   form.QuestionNPS,
			body:           `{"nps_score":9}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "text answer required",
			questionType:   form.QuestionText,
			body:           `{"respondent_name":"Ada"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid respondent email",
			questionType:   form.QuestionRating,
			body:           `{"rating":4,"respondent_email":"not-an-email"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			questionType:   form.QuestionRating,
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, forms := newResponseHandler(t)
			f := seedForm(t, forms, tt.questionType)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/f/"+f.Slug+"/responses", strings.NewReader(tt.body))
			req = withURLParam(req, "slug", f.Slug)
			rr := httptest.NewRecorder()

			handler.Submit(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d (body %s)", rr.Code, tt.expectedStatus, rr.Body.String())
			}
		})
	}
}

func TestResponseHandler_Submit_UnknownSlug(t *testing.T) {
	handler, _ := newResponseHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/f/nope/responses", strings.NewReader(`{"rating":5}`))
	req = withURLParam(req, "slug", "nope")
	rr := httptest.NewRecorder()

	handler.Submit(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestResponseHandler_Summary(t *testing.T) {
	handler, forms := newResponseHandler(t)
	f := seedForm(t, forms, form.QuestionRating)

	for _, rating := range []int{5, 4, 3} {
		body, _ := json.Marshal(map[string]interface{}{"rating": rating})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/f/"+f.Slug+"/responses", strings.NewReader(string(body)))
		req = withURLParam(req, "slug", f.Slug)
		rr := httptest.NewRecorder()
		handler.Submit(rr, req)
		if rr.Code != http.StatusCreated {
			t.Fatalf("seed submit failed: %d", rr.Code)
		}
	}

	req := authedRequest(http.MethodGet, "/api/v1/forms/1/summary", nil, 1)
	req = withURLParam(req, "id", "1")
	rr := httptest.NewRecorder()

	handler.Summary(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp struct {
		Data struct {
			Total         int64   `json:"total"`
			AverageRating float64 `json:"average_rating"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Total != 3 {
		t.Errorf("total = %d, want 3", resp.Data.Total)
	}
	if resp.Data.AverageRating != 4.0 {
		t.Errorf("average rating = %f, want 4.0", resp.Data.AverageRating)
	}
}

func TestResponseHandler_Export_CSVHeaders(t *testing.T) {
	handler, forms := newResponseHandler(t)
	f := seedForm(t, forms, form.QuestionText)

	body := `{"text":"Great product, highly recommend","respondent_name":"Ada"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/f/"+f.Slug+"/responses", strings.NewReader(body))
	req = withURLParam(req, "slug", f.Slug)
	rr := httptest.NewRecorder()
	handler.Submit(rr, req)

	req = authedRequest(http.MethodGet, "/api/v1/forms/1/export", nil, 1)
	req = withURLParam(req, "id", "1")
	rr = httptest.NewRecorder()

	handler.Export(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rr.Code, http.StatusOK, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content type = %q, want text/csv", ct)
	}
	if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, "responses-1.csv") {
		t.Errorf("content disposition = %q, want filename responses-1.csv", cd)
	}
	if !strings.Contains(rr.Body.String(), "Great product") {
		t.Error("expected exported CSV to contain the response text")
	}
}

func TestResponseHandler_Export_UnownedForm(t *testing.T) {
	handler, forms := newResponseHandler(t)
	seedForm(t, forms, form.QuestionText)

	req := authedRequest(http.MethodGet, "/api/v1/forms/1/export", nil, 2)
	req = withURLParam(req, "id", "1")
	rr := httptest.NewRecorder()

	handler.Export(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
