package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/proofdeck/server/internal/api/dto"
	"github.com/proofdeck/server/internal/api/middleware"
	"github.com/proofdeck/server/internal/domain/response"
	"github.com/proofdeck/server/internal/pkg/errors"
	"github.com/proofdeck/server/internal/pkg/logger"
	"github.com/proofdeck/server/internal/pkg/utils"
	"github.com/proofdeck/server/internal/pkg/validator"
)

// ResponseHandler handles form response requests
type ResponseHandler struct {
	responseService response.Service
	logger          *logger.Logger
	validator       *validator.Validator
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseService response.Service, log *logger.Logger, val *validator.Validator) *ResponseHandler {
	return &ResponseHandler{
		responseService: responseService,
		logger:          log,
		validator:       val,
	}
}

// Submit accepts a public form submission. No authentication; the slug
// identifies the form.
// @Summary Submit response
// @Tags Public
// @Accept json
// @Produce json
// @Param slug path string true "Form slug"
// @Param request body dto.SubmitResponseRequest true "Answer"
// @Success 201 {object} response.Response
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /f/{slug}/responses [post]
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.WriteError(w, errors.BadRequest("Invalid slug"))
		return
	}

	var req dto.SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	resp, err := h.responseService.Submit(r.Context(), slug, response.Submission{
		RespondentName:  req.RespondentName,
		RespondentEmail: req.RespondentEmail,
		RequestToken:    req.RequestToken,
		Rating:          req.Rating,
		NPSScore:        req.NPSScore,
		YesNo:           req.YesNo,
		Text:            req.Text,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, resp)
}

// List lists a form's responses
// @Summary List responses
// @Tags Responses
// @Produce json
// @Param id path int true "Form ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.PaginatedResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /forms/{id}/responses [get]
func (h *ResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	formID, err := idParam(r, "id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	params := utils.ParsePaginationParams(r)

	responses, total, err := h.responseService.ListByForm(r.Context(), userID, formID, params.PageSize, params.Offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, utils.NewPaginatedResponse(responses, params.Page, params.PageSize, total))
}

// Delete removes a response
// @Summary Delete response
// @Tags Responses
// @Param id path int true "Response ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /responses/{id} [delete]
func (h *ResponseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := h.responseService.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Response deleted successfully", nil)
}

// Summary returns the analytics summary for a form
// @Summary Form analytics
// @Tags Responses
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} response.Summary
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /forms/{id}/summary [get]
func (h *ResponseHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	formID, err := idParam(r, "id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	summary, err := h.responseService.Summarize(r.Context(), userID, formID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, summary)
}

// Export streams all responses of a form as a CSV download
// @Summary Export responses as CSV
// @Tags Responses
// @Produce text/csv
// @Param id path int true "Form ID"
// @Success 200 {string} string "CSV content"
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /forms/{id}/export [get]
func (h *ResponseHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	formID, err := idParam(r, "id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := h.responseService.ExportCSV(r.Context(), userID, formID, &buf); err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="responses-%d.csv"`, formID))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.ErrorWithErr(err, "CSV export write failed")
	}
}
