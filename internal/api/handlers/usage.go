package handlers

import (
	"net/http"

	"github.com/proofdeck/server/internal/api/middleware"
	"github.com/proofdeck/server/internal/domain/usage"
	"github.com/proofdeck/server/internal/pkg/errors"
	"github.com/proofdeck/server/internal/pkg/logger"
	"github.com/proofdeck/server/internal/pkg/utils"
)

// UsageHandler handles usage status requests
type UsageHandler struct {
	usageService usage.Service
	logger       *logger.Logger
}

// NewUsageHandler creates a new usage handler
func NewUsageHandler(usageService usage.Service, log *logger.Logger) *UsageHandler {
	return &UsageHandler{
		usageService: usageService,
		logger:       log,
	}
}

// Status returns the current month's usage against the user's plan
// @Summary Usage status
// @Tags Usage
// @Produce json
// @Success 200 {object} usage.Status
// @Failure 401 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /usage [get]
func (h *UsageHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	status, err := h.usageService.Status(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, status)
}
