package handlers

import (
	"context"

	"dealerhub/internal/core/services"
	"dealerhub/internal/pkg/pagination"
	"dealerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// runOwnedAction parses :id (dealer) and :account_id and applies an approve
// or pass style transition keyed by both
func runOwnedAction[T any](c *fiber.Ctx, fn func(ctx context.Context, dealerID, id uint) (T, error), success, failure string) error {
	dealerID, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid dealer ID")
	}
	accountID, ok := paramID(c, "account_id")
	if !ok {
		return response.BadRequest(c, "Invalid account ID")
	}

	account, err := fn(c.Context(), dealerID, accountID)
	if err != nil {
		return handleError(c, err, failure)
	}

	return response.Success(c, success, account)
}

// listInput reads the optional :id dealer scope and the page window
func listInput(c *fiber.Ctx) (*services.ListSubAccountsInput, *pagination.Params, bool) {
	params := pagination.GetParams(c)
	input := &services.ListSubAccountsInput{Page: params.Page, Limit: params.Limit}

	if c.Params("id") != "" {
		dealerID, ok := paramID(c, "id")
		if !ok {
			return nil, nil, false
		}
		input.DealerID = &dealerID
	}
	return input, params, true
}

// ============================================================
// Technicians
// ============================================================

// TechnicianHandler handles technician endpoints
type TechnicianHandler struct {
	technicianService *services.TechnicianService
}

// NewTechnicianHandler creates a new technician handler
func NewTechnicianHandler(technicianService *services.TechnicianService) *TechnicianHandler {
	return &TechnicianHandler{technicianService: technicianService}
}

// Create handles technician signup under a dealer
// @Summary Register technician
// @Tags Technicians
// @Accept json
// @Produce json
// @Param id path int true "Dealer ID"
// @Param body body services.CreateSubAccountInput true "Technician"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /dealers/{id}/technicians [post]
func (h *TechnicianHandler) Create(c *fiber.Ctx) error {
	dealerID, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid dealer ID")
	}

	var req services.CreateSubAccountInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	technician, err := h.technicianService.Create(c.Context(), dealerID, &req)
	if err != nil {
		return handleError(c, err, "Failed to create technician")
	}

	return response.Created(c, "Technician registered successfully", technician)
}

// List handles listing technicians, optionally for one dealer
// @Summary List technicians
// @Tags Technicians
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /admin/technicians [get]
// @Router /admin/dealers/{id}/technicians [get]
func (h *TechnicianHandler) List(c *fiber.Ctx) error {
	input, params, ok := listInput(c)
	if !ok {
		return response.BadRequest(c, "Invalid dealer ID")
	}

	technicians, total, err := h.technicianService.List(c.Context(), input)
	if err != nil {
		return handleError(c, err, "Failed to list technicians")
	}

	return response.Page(c, "Technicians retrieved successfully", technicians, params, total)
}

// Get handles getting a technician by ID
// @Summary Get technician
// @Tags Technicians
// @Produce json
// @Security BearerAuth
// @Param id path int true "Technician ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/technicians/{id} [get]
func (h *TechnicianHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid technician ID")
	}

	technician, err := h.technicianService.Get(c.Context(), id)
	if err != nil {
		return handleError(c, err, "Failed to get technician")
	}

	return response.Success(c, "Technician retrieved successfully", technician)
}

// Approve handles technician approval
// @Summary Approve technician
// @Tags Technicians
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dealer ID"
// @Param account_id path int true "Technician ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/dealers/{id}/technicians/{account_id}/approve [put]
func (h *TechnicianHandler) Approve(c *fiber.Ctx) error {
	return runOwnedAction(c, h.technicianService.Approve, "Technician approved", "Failed to approve technician")
}

// Disapprove handles revoking technician approval
// @Summary Disapprove technician
// @Tags Technicians
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dealer ID"
// @Param account_id path int true "Technician ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/dealers/{id}/technicians/{account_id}/disapprove [put]
func (h *TechnicianHandler) Disapprove(c *fiber.Ctx) error {
	return runOwnedAction(c, h.technicianService.Disapprove, "Technician disapproved", "Failed to disapprove technician")
}

// Pass marks the technician as having passed certification
// @Summary Mark technician passed
// @Tags Technicians
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dealer ID"
// @Param account_id path int true "Technician ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/dealers/{id}/technicians/{account_id}/pass [put]
func (h *TechnicianHandler) Pass(c *fiber.Ctx) error {
	return runOwnedAction(c, h.technicianService.MarkPassed, "Technician marked as passed", "Failed to update technician")
}

// Fail marks the technician as not passed
// @Summary Mark technician failed
// @Tags Technicians
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dealer ID"
// @Param account_id path int true "Technician ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/dealers/{id}/technicians/{account_id}/fail [put]
func (h *TechnicianHandler) Fail(c *fiber.Ctx) error {
	return runOwnedAction(c, h.technicianService.MarkFailed, "Technician marked as failed", "Failed to update technician")
}

// Update handles a partial technician update
// @Summary Update technician
// @Tags Technicians
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Technician ID"
// @Param body body services.UpdateSubAccountInput true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/technicians/{id} [patch]
func (h *TechnicianHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid technician ID")
	}

	var req services.UpdateSubAccountInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	technician, err := h.technicianService.Update(c.Context(), id, &req)
	if err != nil {
		return handleError(c, err, "Failed to update technician")
	}

	return response.Success(c, "Technician updated successfully", technician)
}

// Delete handles technician deletion
// @Summary Delete technician
// @Tags Technicians
// @Produce json
// @Security BearerAuth
// @Param id path int true "Technician ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/technicians/{id} [delete]
func (h *TechnicianHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid technician ID")
	}

	if err := h.technicianService.Delete(c.Context(), id); err != nil {
		return handleError(c, err, "Failed to delete technician")
	}

	return response.Success(c, "Technician deleted successfully", nil)
}

// ============================================================
// Back-office users
// ============================================================

// BackOfficeHandler handles back-office user endpoints
type BackOfficeHandler struct {
	backOfficeService *services.BackOfficeService
}

// NewBackOfficeHandler creates a new back-office handler
func NewBackOfficeHandler(backOfficeService *services.BackOfficeService) *BackOfficeHandler {
	return &BackOfficeHandler{backOfficeService: backOfficeService}
}

// Create handles back-office signup under a dealer
// @Summary Register back-office user
// @Tags BackOffice
// @Accept json
// @Produce json
// @Param id path int true "Dealer ID"
// @Param body body services.CreateSubAccountInput true "Back-office user"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /dealers/{id}/backoffice [post]
func (h *BackOfficeHandler) Create(c *fiber.Ctx) error {
	dealerID, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid dealer ID")
	}

	var req services.CreateSubAccountInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	account, err := h.backOfficeService.Create(c.Context(), dealerID, &req)
	if err != nil {
		return handleError(c, err, "Failed to create back-office user")
	}

	return response.Created(c, "Back-office user registered successfully", account)
}

// List handles listing back-office users, optionally for one dealer
// @Summary List back-office users
// @Tags BackOffice
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/backoffice [get]
// @Router /admin/dealers/{id}/backoffice [get]
func (h *BackOfficeHandler) List(c *fiber.Ctx) error {
	input, params, ok := listInput(c)
	if !ok {
		return response.BadRequest(c, "Invalid dealer ID")
	}

	accounts, total, err := h.backOfficeService.List(c.Context(), input)
	if err != nil {
		return handleError(c, err, "Failed to list back-office users")
	}

	return response.Page(c, "Back-office users retrieved successfully", accounts, params, total)
}

// Get handles getting a back-office user by ID
// @Summary Get back-office user
// @Tags BackOffice
// @Produce json
// @Security BearerAuth
// @Param id path int true "Back-office user ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/backoffice/{id} [get]
func (h *BackOfficeHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid back-office user ID")
	}

	account, err := h.backOfficeService.Get(c.Context(), id)
	if err != nil {
		return handleError(c, err, "Failed to get back-office user")
	}

	return response.Success(c, "Back-office user retrieved successfully", account)
}

// Approve handles back-office approval
// @Summary Approve back-office user
// @Tags BackOffice
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dealer ID"
// @Param account_id path int true "Back-office user ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/dealers/{id}/backoffice/{account_id}/approve [put]
func (h *BackOfficeHandler) Approve(c *fiber.Ctx) error {
	return runOwnedAction(c, h.backOfficeService.Approve, "Back-office user approved", "Failed to approve back-office user")
}

// Disapprove handles revoking back-office approval
// @Summary Disapprove back-office user
// @Tags BackOffice
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dealer ID"
// @Param account_id path int true "Back-office user ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/dealers/{id}/backoffice/{account_id}/disapprove [put]
func (h *BackOfficeHandler) Disapprove(c *fiber.Ctx) error {
	return runOwnedAction(c, h.backOfficeService.Disapprove, "Back-office user disapproved", "Failed to disapprove back-office user")
}

// Update handles a partial back-office update
// @Summary Update back-office user
// @Tags BackOffice
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Back-office user ID"
// @Param body body services.UpdateSubAccountInput true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/backoffice/{id} [patch]
func (h *BackOfficeHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid back-office user ID")
	}

	var req services.UpdateSubAccountInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	account, err := h.backOfficeService.Update(c.Context(), id, &req)
	if err != nil {
		return handleError(c, err, "Failed to update back-office user")
	}

	return response.Success(c, "Back-office user updated successfully", account)
}

// Delete handles back-office deletion
// @Summary Delete back-office user
// @Tags BackOffice
// @Produce json
// @Security BearerAuth
// @Param id path int true "Back-office user ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/backoffice/{id} [delete]
func (h *BackOfficeHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid back-office user ID")
	}

	if err := h.backOfficeService.Delete(c.Context(), id); err != nil {
		return handleError(c, err, "Failed to delete back-office user")
	}

	return response.Success(c, "Back-office user deleted successfully", nil)
}
