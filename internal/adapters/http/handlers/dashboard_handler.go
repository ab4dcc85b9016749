package handlers

import (
	"dealerhub/internal/core/services"
	"dealerhub/internal/pkg/pagination"
	"dealerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService    *services.DashboardService
	notificationService *services.NotificationService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService, notificationService *services.NotificationService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService:    dashboardService,
		notificationService: notificationService,
	}
}

// GetAdminDashboard returns admin dashboard data
// @Summary Admin Dashboard
// @Description Counters for the admin home page
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/dashboard [get]
func (h *DashboardHandler) GetAdminDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetAdminDashboard(c.Context())
	if err != nil {
		return handleError(c, err, "Failed to get admin dashboard")
	}

	return response.Success(c, "Admin dashboard retrieved successfully", data)
}

// ListNotifications returns the notification delivery log
// @Summary List notifications
// @Description Email and SMS delivery log, newest first
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /admin/notifications [get]
func (h *DashboardHandler) ListNotifications(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	items, total, err := h.notificationService.List(c.Context(), params.Page, params.Limit)
	if err != nil {
		return handleError(c, err, "Failed to list notifications")
	}

	return response.Page(c, "Notifications retrieved successfully", items, params, total)
}
