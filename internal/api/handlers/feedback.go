package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/proofdeck/server/internal/api/dto"
	"github.com/proofdeck/server/internal/api/middleware"
	"github.com/proofdeck/server/internal/domain/feedback"
	"github.com/proofdeck/server/internal/pkg/errors"
	"github.com/proofdeck/server/internal/pkg/logger"
	"github.com/proofdeck/server/internal/pkg/utils"
	"github.com/proofdeck/server/internal/pkg/validator"
)

// FeedbackHandler handles feedback request operations
type FeedbackHandler struct {
	feedbackService feedback.Service
	logger          *logger.Logger
	validator       *validator.Validator
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackService feedback.Service, log *logger.Logger, val *validator.Validator) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		logger:          log,
		validator:       val,
	}
}

// Send emails a feedback request for one of the user's forms. Counts
// against the monthly quota.
// @Summary Send feedback request
// @Tags Requests
// @Accept json
// @Produce json
// @Param request body dto.SendFeedbackRequestRequest true "Recipient"
// @Success 201 {object} feedback.Request
// @Failure 403 {object} utils.ErrorResponse "Quota exceeded"
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /requests [post]
func (h *FeedbackHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	var req dto.SendFeedbackRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	sent, err := h.feedbackService.Send(r.Context(), userID, req.FormID, req.RecipientEmail, req.RecipientName, req.Message)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, sent)
}

// List lists the user's feedback requests
// @Summary List feedback requests
// @Tags Requests
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.PaginatedResponse
// @Security BearerAuth
// @Router /requests [get]
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	params := utils.ParsePaginationParams(r)

	requests, total, err := h.feedbackService.List(r.Context(), userID, params.PageSize, params.Offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, utils.NewPaginatedResponse(requests, params.Page, params.PageSize, total))
}
