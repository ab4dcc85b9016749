package handlers

import (
	"errors"
	"strconv"

	"dealerhub/internal/core/domain"
	"dealerhub/internal/core/services"
	"dealerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// handleError maps a service error onto the response envelope. Anything that
// is not a known domain category is logged and answered with fallback.
func handleError(c *fiber.Ctx, err error, fallback string) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return response.BadRequest(c, verr.Message)
	case errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrDuplicateEntry), errors.Is(err, domain.ErrConflict):
		return response.Conflict(c, err.Error())
	default:
		zap.L().Error(fallback,
			zap.Error(err),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		)
		return response.InternalServerError(c, fallback)
	}
}

// paramID parses a positive numeric path parameter
func paramID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
