package handlers

import (
	"context"

	"dealerhub/internal/adapters/persistence/models"
	"dealerhub/internal/core/services"
	"dealerhub/internal/pkg/pagination"
	"dealerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RMAHandler handles return request endpoints
type RMAHandler struct {
	rmaService *services.RMAService
}

// NewRMAHandler creates a new rma handler
func NewRMAHandler(rmaService *services.RMAService) *RMAHandler {
	return &RMAHandler{rmaService: rmaService}
}

// File handles filing a return request
// @Summary File RMA
// @Description File a return request for a dealer, technician or back-office customer
// @Tags RMA
// @Accept json
// @Produce json
// @Param body body services.FileRMAInput true "Return request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rma [post]
func (h *RMAHandler) File(c *fiber.Ctx) error {
	var req services.FileRMAInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	rma, err := h.rmaService.File(c.Context(), &req)
	if err != nil {
		return handleError(c, err, "Failed to file rma request")
	}

	return response.Created(c, "RMA request filed successfully", rma)
}

// List handles listing return requests
// @Summary List RMA requests
// @Tags RMA
// @Produce json
// @Security BearerAuth
// @Param status query string false "PENDING | ACCEPTED | REJECTED | RESOLVED"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/rma [get]
func (h *RMAHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	requests, total, err := h.rmaService.List(c.Context(), &services.ListRMAInput{
		Status: c.Query("status"),
		Page:   params.Page,
		Limit:  params.Limit,
	})
	if err != nil {
		return handleError(c, err, "Failed to list rma requests")
	}

	return response.Page(c, "RMA requests retrieved successfully", requests, params, total)
}

// Get handles getting a return request by ID
// @Summary Get RMA request
// @Tags RMA
// @Produce json
// @Param id path int true "RMA ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rma/{id} [get]
func (h *RMAHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid rma ID")
	}

	rma, err := h.rmaService.Get(c.Context(), id)
	if err != nil {
		return handleError(c, err, "Failed to get rma request")
	}

	return response.Success(c, "RMA request retrieved successfully", rma)
}

// Accept handles accepting a return request
// @Summary Accept RMA
// @Tags RMA
// @Produce json
// @Security BearerAuth
// @Param id path int true "RMA ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/rma/{id}/accept [put]
func (h *RMAHandler) Accept(c *fiber.Ctx) error {
	return h.transition(c, h.rmaService.Accept, "RMA request accepted")
}

// Reject handles rejecting a return request
// @Summary Reject RMA
// @Tags RMA
// @Produce json
// @Security BearerAuth
// @Param id path int true "RMA ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/rma/{id}/reject [put]
func (h *RMAHandler) Reject(c *fiber.Ctx) error {
	return h.transition(c, h.rmaService.Reject, "RMA request rejected")
}

// Resolve handles resolving a return request
// @Summary Resolve RMA
// @Tags RMA
// @Produce json
// @Security BearerAuth
// @Param id path int true "RMA ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/rma/{id}/resolved [put]
func (h *RMAHandler) Resolve(c *fiber.Ctx) error {
	return h.transition(c, h.rmaService.Resolve, "RMA request resolved")
}

func (h *RMAHandler) transition(c *fiber.Ctx, fn func(context.Context, uint) (*models.RMARequest, error), success string) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid rma ID")
	}

	rma, err := fn(c.Context(), id)
	if err != nil {
		return handleError(c, err, "Failed to update rma request")
	}

	return response.Success(c, success, rma)
}

// Delete handles return request deletion
// @Summary Delete RMA
// @Tags RMA
// @Produce json
// @Security BearerAuth
// @Param id path int true "RMA ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/rma/{id} [delete]
func (h *RMAHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid rma ID")
	}

	if err := h.rmaService.Delete(c.Context(), id); err != nil {
		return handleError(c, err, "Failed to delete rma request")
	}

	return response.Success(c, "RMA request deleted successfully", nil)
}
