package handlers

import (
	"dealerhub/internal/core/services"
	"dealerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PincodeHandler handles postal code lookups
type PincodeHandler struct {
	pincodeService *services.PincodeService
}

// NewPincodeHandler creates a new pincode handler
func NewPincodeHandler(pincodeService *services.PincodeService) *PincodeHandler {
	return &PincodeHandler{pincodeService: pincodeService}
}

// Lookup resolves a pincode to its post offices
// @Summary Lookup pincode
// @Description Post offices serving a 6 digit Indian pincode, with district and state
// @Tags Pincode
// @Produce json
// @Param code path string true "Pincode"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pincode/{code} [get]
func (h *PincodeHandler) Lookup(c *fiber.Ctx) error {
	offices, err := h.pincodeService.Lookup(c.Context(), c.Params("code"))
	if err != nil {
		return handleError(c, err, "Failed to lookup pincode")
	}

	return response.List(c, "Pincode resolved successfully", offices, int64(len(offices)))
}
