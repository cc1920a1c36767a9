package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/proofdeck/server/internal/api/dto"
	"github.com/proofdeck/server/internal/api/middleware"
	"github.com/proofdeck/server/internal/domain/share"
	"github.com/proofdeck/server/internal/pkg/errors"
	"github.com/proofdeck/server/internal/pkg/logger"
	"github.com/proofdeck/server/internal/pkg/utils"
	"github.com/proofdeck/server/internal/pkg/validator"
)

// ShareHandler handles testimonial and share tracking requests
type ShareHandler struct {
	shareService share.Service
	logger       *logger.Logger
	validator    *validator.Validator
}

// NewShareHandler creates a new share handler
func NewShareHandler(shareService share.Service, log *logger.Logger, val *validator.Validator) *ShareHandler {
	return &ShareHandler{
		shareService: shareService,
		logger:       log,
		validator:    val,
	}
}

// Testimonial generates shareable quote and caption text from a response
// @Summary Generate testimonial
// @Tags Shares
// @Produce json
// @Param id path int true "Response ID"
// @Success 200 {object} share.Testimonial
// @Failure 400 {object} utils.ErrorResponse "Response is not positive"
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /responses/{id}/testimonial [get]
func (h *ShareHandler) Testimonial(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	responseID, err := idParam(r, "id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	t, err := h.shareService.Testimonial(r.Context(), userID, responseID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, t)
}

// Image renders the testimonial as a PNG image
// @Summary Testimonial image
// @Tags Shares
// @Produce image/png
// @Param id path int true "Response ID"
// @Success 200 {string} binary "PNG image"
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /responses/{id}/testimonial/image [get]
func (h *ShareHandler) Image(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	responseID, err := idParam(r, "id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	png, err := h.shareService.Image(r.Context(), userID, responseID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger.ErrorWithErr(err, "Failed to write testimonial image")
	}
}

// Record stores a performed social share. Counts against the monthly
// quota and the plan's platform list.
// @Summary Record share
// @Tags Shares
// @Accept json
// @Produce json
// @Param request body dto.RecordShareRequest true "Share details"
// @Success 201 {object} share.Share
// @Failure 403 {object} utils.ErrorResponse "Quota exceeded or platform not allowed"
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /shares [post]
func (h *ShareHandler) Record(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	var req dto.RecordShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	s, err := h.shareService.Record(r.Context(), userID, req.ResponseID, req.Platform, req.Caption)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, s)
}

// List lists the user's share history
// @Summary List shares
// @Tags Shares
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.PaginatedResponse
// @Security BearerAuth
// @Router /shares [get]
func (h *ShareHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	params := utils.ParsePaginationParams(r)

	shares, total, err := h.shareService.List(r.Context(), userID, params.PageSize, params.Offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, utils.NewPaginatedResponse(shares, params.Page, params.PageSize, total))
}
