package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/proofdeck/server/internal/api/dto"
	"github.com/proofdeck/server/internal/api/middleware"
	"github.com/proofdeck/server/internal/domain/form"
	"github.com/proofdeck/server/internal/pkg/errors"
	"github.com/proofdeck/server/internal/pkg/logger"
	"github.com/proofdeck/server/internal/pkg/utils"
	"github.com/proofdeck/server/internal/pkg/validator"
)

// FormHandler handles feedback form requests
type FormHandler struct {
	formService form.Service
	logger      *logger.Logger
	validator   *validator.Validator
}

// NewFormHandler creates a new form handler
func NewFormHandler(formService form.Service, log *logger.Logger, val *validator.Validator) *FormHandler {
	return &FormHandler{
		formService: formService,
		logger:      log,
		validator:   val,
	}
}

// Create creates a feedback form
// @Summary Create form
// @Tags Forms
// @Accept json
// @Produce json
// @Param request body dto.CreateFormRequest true "Form details"
// @Success 201 {object} form.Form
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /forms [post]
func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	var req dto.CreateFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	f, err := h.formService.Create(r.Context(), userID, req.Title, req.Intro, req.QuestionType)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, f)
}

// List lists the user's forms
// @Summary List forms
// @Tags Forms
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.PaginatedResponse
// @Security BearerAuth
// @Router /forms [get]
func (h *FormHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	params := utils.ParsePaginationParams(r)

	forms, total, err := h.formService.List(r.Context(), userID, params.PageSize, params.Offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, utils.NewPaginatedResponse(forms, params.Page, params.PageSize, total))
}

// Get retrieves one of the user's forms
// @Summary Get form
// @Tags Forms
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} form.Form
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /forms/{id} [get]
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	f, err := h.formService.GetByID(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, f)
}

// GetBySlug serves the public form page data. Inactive forms are not
// exposed here.
// @Summary Public form
// @Tags Public
// @Produce json
// @Param slug path string true "Form slug"
// @Success 200 {object} form.Form
// @Failure 404 {object} utils.ErrorResponse
// @Router /f/{slug} [get]
func (h *FormHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.WriteError(w, errors.BadRequest("Invalid slug"))
		return
	}

	f, err := h.formService.GetBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, f)
}

// Update updates a form
// @Summary Update form
// @Tags Forms
// @Accept json
// @Produce json
// @Param id path int true "Form ID"
// @Param request body dto.UpdateFormRequest true "Updated fields"
// @Success 200 {object} form.Form
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /forms/{id} [put]
func (h *FormHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req dto.UpdateFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	f, err := h.formService.GetByID(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	f.Title = req.Title
	f.Intro = req.Intro
	f.Active = *req.Active

	if err := h.formService.Update(r.Context(), f); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, f)
}

// Delete deletes a form and its responses
// @Summary Delete form
// @Tags Forms
// @Param id path int true "Form ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /forms/{id} [delete]
func (h *FormHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.formService.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Form deleted successfully", nil)
}
