package handlers

import (
	"net/http"

	"shramic/services/dashboard"
	"shramic/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the owner dashboard.
type DashboardHandler struct {
	Service dashboard.Service
}

// NewDashboardHandler creates a new DashboardHandler instance.
func NewDashboardHandler(service dashboard.Service) *DashboardHandler {
	return &DashboardHandler{Service: service}
}

// OverviewHandler returns the owner's aggregated dashboard.
func (h *DashboardHandler) OverviewHandler(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "Verify your phone number first.")
		return
	}

	overview, err := h.Service.Overview(c.Request.Context(), identity.PhoneNumber)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load dashboard", err.Error())
		return
	}
	c.JSON(http.StatusOK, overview)
}
