package handlers

import (
	"strconv"

	"dealerhub/internal/core/services"
	"dealerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DiscountHandler handles dealer discount endpoints
type DiscountHandler struct {
	discountService *services.DiscountService
}

// NewDiscountHandler creates a new discount handler
func NewDiscountHandler(discountService *services.DiscountService) *DiscountHandler {
	return &DiscountHandler{discountService: discountService}
}

// Assign handles granting a discount
// @Summary Assign discount
// @Description Grant a dealer a PERCENTAGE or AMOUNT discount on a product until expiry_date (YYYY-MM-DD). The value that does not match the type is stored as 0.
// @Tags Discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.AssignDiscountInput true "Discount"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/discounts [post]
func (h *DiscountHandler) Assign(c *fiber.Ctx) error {
	var req services.AssignDiscountInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	discount, err := h.discountService.Assign(c.Context(), &req)
	if err != nil {
		return handleError(c, err, "Failed to assign discount")
	}

	return response.Created(c, "Discount assigned successfully", discount)
}

// List handles listing discounts
// @Summary List discounts
// @Tags Discounts
// @Produce json
// @Security BearerAuth
// @Param dealer_id query int false "Only this dealer"
// @Param active query bool false "Only unexpired discounts"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/discounts [get]
func (h *DiscountHandler) List(c *fiber.Ctx) error {
	input := &services.ListDiscountsInput{
		ActiveOnly: c.QueryBool("active", false),
	}
	if raw := c.Query("dealer_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return response.BadRequest(c, "Invalid dealer ID")
		}
		dealerID := uint(id)
		input.DealerID = &dealerID
	}

	return h.list(c, input)
}

// ListForDealer handles listing a dealer's unexpired discounts
// @Summary Dealer discounts
// @Tags Discounts
// @Produce json
// @Param id path int true "Dealer ID"
// @Success 200 {object} response.Response
// @Router /dealers/{id}/discounts [get]
func (h *DiscountHandler) ListForDealer(c *fiber.Ctx) error {
	dealerID, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid dealer ID")
	}

	return h.list(c, &services.ListDiscountsInput{DealerID: &dealerID, ActiveOnly: true})
}

func (h *DiscountHandler) list(c *fiber.Ctx, input *services.ListDiscountsInput) error {
	discounts, err := h.discountService.List(c.Context(), input)
	if err != nil {
		return handleError(c, err, "Failed to list discounts")
	}

	return response.List(c, "Discounts retrieved successfully", discounts, int64(len(discounts)))
}

// Get handles getting a discount by ID
// @Summary Get discount
// @Tags Discounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Discount ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/discounts/{id} [get]
func (h *DiscountHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid discount ID")
	}

	discount, err := h.discountService.Get(c.Context(), id)
	if err != nil {
		return handleError(c, err, "Failed to get discount")
	}

	return response.Success(c, "Discount retrieved successfully", discount)
}

// Delete handles discount deletion
// @Summary Delete discount
// @Tags Discounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Discount ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/discounts/{id} [delete]
func (h *DiscountHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid discount ID")
	}

	if err := h.discountService.Delete(c.Context(), id); err != nil {
		return handleError(c, err, "Failed to delete discount")
	}

	return response.Success(c, "Discount deleted successfully", nil)
}
