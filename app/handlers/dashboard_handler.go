package handlers

import (
	"github.com/gofiber/fiber/v3"
	businessflow "github.com/prospectra/lead-console/business_flow"
)

// DashboardHandlerInterface defines the contract for dashboard handlers
type DashboardHandlerInterface interface {
	GetDashboard(c fiber.Ctx) error
}

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	baseHandler
	dashboardFlow businessflow.DashboardFlow
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardFlow businessflow.DashboardFlow) *DashboardHandler {
	return &DashboardHandler{
		baseHandler:   newBaseHandler(),
		dashboardFlow: dashboardFlow,
	}
}

// GetDashboard returns summary counts for the console landing page
// @Summary Get Dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Dashboard summary"
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c fiber.Ctx) error {
	result, err := h.dashboardFlow.GetDashboard(h.createRequestContext(c, "/api/v1/dashboard"))
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load dashboard", "DASHBOARD_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Dashboard retrieved", result)
}
