package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/proofdeck/server/internal/api/dto"
	"github.com/proofdeck/server/internal/api/middleware"
	"github.com/proofdeck/server/internal/domain/usage"
	"github.com/proofdeck/server/internal/domain/user"
	"github.com/proofdeck/server/internal/pkg/errors"
	"github.com/proofdeck/server/internal/pkg/logger"
	"github.com/proofdeck/server/internal/pkg/utils"
	"github.com/proofdeck/server/internal/pkg/validator"
)

// BillingHandler handles plan catalog and plan change requests
type BillingHandler struct {
	userService user.Service
	logger      *logger.Logger
	validator   *validator.Validator
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(userService user.Service, log *logger.Logger, val *validator.Validator) *BillingHandler {
	return &BillingHandler{
		userService: userService,
		logger:      log,
		validator:   val,
	}
}

func planDTO(id, name string, priceCents int) dto.PlanDTO {
	limits := usage.Limits(id)
	return dto.PlanDTO{
		ID:                   id,
		Name:                 name,
		PriceCentsMonthly:    priceCents,
		FeedbackRequestLimit: limits.FeedbackRequestLimit,
		SocialShareLimit:     limits.SocialShareLimit,
		AllowedPlatforms:     limits.AllowedPlatforms,
	}
}

// Plans returns the plan catalog
// @Summary List plans
// @Tags Billing
// @Produce json
// @Success 200 {array} dto.PlanDTO
// @Router /billing/plans [get]
func (h *BillingHandler) Plans(w http.ResponseWriter, r *http.Request) {
	plans := []dto.PlanDTO{
		planDTO(usage.PlanFree, "Free", 0),
		planDTO(usage.PlanPro, "Pro", 1900),
	}
	utils.WriteSuccess(w, http.StatusOK, plans)
}

// Info returns the authenticated user's current plan
// @Summary Get billing info
// @Tags Billing
// @Produce json
// @Success 200 {object} dto.BillingInfoDTO
// @Security BearerAuth
// @Router /billing [get]
func (h *BillingHandler) Info(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	u, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	info := dto.BillingInfoDTO{}
	switch u.Plan {
	case usage.PlanPro:
		info.Plan = planDTO(usage.PlanPro, "Pro", 1900)
	default:
		info.Plan = planDTO(usage.PlanFree, "Free", 0)
	}

	utils.WriteSuccess(w, http.StatusOK, info)
}

// ChangePlan moves the user to another plan tier
// @Summary Change plan
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.ChangePlanRequest true "Target plan"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /billing/plan [put]
func (h *BillingHandler) ChangePlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	var req dto.ChangePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	if err := h.userService.ChangePlan(r.Context(), userID, req.Plan); err != nil {
		writeServiceError(w, err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"user_id": userID,
		"plan":    req.Plan,
	}).Info("Plan changed")

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Plan updated successfully", map[string]string{"plan": req.Plan})
}
