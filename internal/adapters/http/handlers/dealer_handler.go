package handlers

import (
	"dealerhub/internal/core/domain"
	"dealerhub/internal/core/services"
	"dealerhub/internal/pkg/pagination"
	"dealerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DealerHandler handles dealer endpoints
type DealerHandler struct {
	dealerService       *services.DealerService
	registrationService *services.RegistrationService
}

// NewDealerHandler creates a new dealer handler
func NewDealerHandler(dealerService *services.DealerService, registrationService *services.RegistrationService) *DealerHandler {
	return &DealerHandler{
		dealerService:       dealerService,
		registrationService: registrationService,
	}
}

// Register handles the dealer signup wizard submission
// @Summary Register dealer
// @Description Submit the business, contact and address pages of the signup wizard. The dealer starts unapproved.
// @Tags Dealers
// @Accept json
// @Produce json
// @Param body body services.RegistrationSubmission true "Wizard pages"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /dealers/register [post]
func (h *DealerHandler) Register(c *fiber.Ctx) error {
	var req services.RegistrationSubmission
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	dealer, err := h.registrationService.Submit(c.Context(), &req)
	if err != nil {
		return handleError(c, err, "Failed to register dealer")
	}

	return response.Created(c, "Dealer registered successfully", dealer)
}

// List handles listing dealers
// @Summary List dealers
// @Tags Dealers
// @Produce json
// @Security BearerAuth
// @Param status query string false "approved | not-approved | distributor"
// @Param search query string false "Name, business, email or GSTIN"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/dealers [get]
func (h *DealerHandler) List(c *fiber.Ctx) error {
	return h.list(c, domain.DealerFilter(c.Query("status")))
}

// ListApproved handles listing approved dealers
// @Summary List approved dealers
// @Tags Dealers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/dealers/approved [get]
func (h *DealerHandler) ListApproved(c *fiber.Ctx) error {
	return h.list(c, domain.DealerFilterApproved)
}

// ListNotApproved handles listing dealers awaiting approval
// @Summary List dealers awaiting approval
// @Tags Dealers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/dealers/not-approved [get]
func (h *DealerHandler) ListNotApproved(c *fiber.Ctx) error {
	return h.list(c, domain.DealerFilterNotApproved)
}

// ListDistributors handles listing distributors
// @Summary List distributors
// @Tags Dealers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/dealers/distributors [get]
func (h *DealerHandler) ListDistributors(c *fiber.Ctx) error {
	return h.list(c, domain.DealerFilterDistributor)
}

func (h *DealerHandler) list(c *fiber.Ctx, filter domain.DealerFilter) error {
	params := pagination.GetParams(c)

	dealers, total, err := h.dealerService.List(c.Context(), &services.ListDealersInput{
		Filter: filter,
		Search: params.Search,
		Page:   params.Page,
		Limit:  params.Limit,
	})
	if err != nil {
		return handleError(c, err, "Failed to list dealers")
	}

	return response.Page(c, "Dealers retrieved successfully", dealers, params, total)
}

// Get handles getting a dealer by ID
// @Summary Get dealer
// @Tags Dealers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dealer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/dealers/{id} [get]
func (h *DealerHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid dealer ID")
	}

	dealer, err := h.dealerService.Get(c.Context(), id)
	if err != nil {
		return handleError(c, err, "Failed to get dealer")
	}

	return response.Success(c, "Dealer retrieved successfully", dealer)
}

// Update handles a partial dealer update
// @Summary Update dealer
// @Tags Dealers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dealer ID"
// @Param body body services.UpdateDealerInput true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/dealers/{id} [patch]
func (h *DealerHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid dealer ID")
	}

	var req services.UpdateDealerInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	dealer, err := h.dealerService.Update(c.Context(), id, &req)
	if err != nil {
		return handleError(c, err, "Failed to update dealer")
	}

	return response.Success(c, "Dealer updated successfully", dealer)
}

// Approve handles dealer approval
// @Summary Approve dealer
// @Description Approve the dealer and send the approval email and SMS
// @Tags Dealers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dealer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/dealers/{id}/approve [put]
func (h *DealerHandler) Approve(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid dealer ID")
	}

	dealer, err := h.dealerService.Approve(c.Context(), id)
	if err != nil {
		return handleError(c, err, "Failed to approve dealer")
	}

	return response.Success(c, "Dealer approved successfully", dealer)
}

// Disapprove handles revoking dealer approval
// @Summary Disapprove dealer
// @Tags Dealers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dealer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/dealers/{id}/disapprove [put]
func (h *DealerHandler) Disapprove(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid dealer ID")
	}

	dealer, err := h.dealerService.Disapprove(c.Context(), id)
	if err != nil {
		return handleError(c, err, "Failed to disapprove dealer")
	}

	return response.Success(c, "Dealer disapproved successfully", dealer)
}

// PromoteToDistributor handles promoting a dealer
// @Summary Promote dealer to distributor
// @Tags Dealers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dealer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/dealers/{id}/distributor [put]
func (h *DealerHandler) PromoteToDistributor(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid dealer ID")
	}

	dealer, err := h.dealerService.PromoteToDistributor(c.Context(), id)
	if err != nil {
		return handleError(c, err, "Failed to promote dealer")
	}

	return response.Success(c, "Dealer promoted to distributor", dealer)
}

// DemoteToDealer handles demoting a distributor
// @Summary Demote distributor to dealer
// @Tags Dealers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dealer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/dealers/{id}/dealer [put]
func (h *DealerHandler) DemoteToDealer(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid dealer ID")
	}

	dealer, err := h.dealerService.DemoteDistributorToDealer(c.Context(), id)
	if err != nil {
		return handleError(c, err, "Failed to demote distributor")
	}

	return response.Success(c, "Distributor demoted to dealer", dealer)
}

// Delete handles dealer deletion
// @Summary Delete dealer
// @Description Delete the dealer with its technicians, back-office users and discounts
// @Tags Dealers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dealer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/dealers/{id} [delete]
func (h *DealerHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid dealer ID")
	}

	if err := h.dealerService.Delete(c.Context(), id); err != nil {
		return handleError(c, err, "Failed to delete dealer")
	}

	return response.Success(c, "Dealer deleted successfully", nil)
}
