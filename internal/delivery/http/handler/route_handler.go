package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wisata-lombok/internal/pkg/errors"
	"github.com/wisata-lombok/internal/pkg/utils"
	"github.com/wisata-lombok/internal/pkg/validator"
	"github.com/wisata-lombok/internal/usecase"
	"github.com/wisata-lombok/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteHandler manages the active route: plan, inspect, clear
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// Plan computes a route to a catalog destination from the current position
func (h *RouteHandler) Plan(c *fiber.Ctx) error {
	var req dto.PlanRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.routeUC.Plan(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Current returns the active route, if any
func (h *RouteHandler) Current(c *fiber.Ctx) error {
	result, err := h.routeUC.Current()
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Clear removes the active route. Safe to call with no route displayed.
func (h *RouteHandler) Clear(c *fiber.Ctx) error {
	h.routeUC.Clear()

	return utils.SendSuccess(c, fiber.Map{
		"message": "Rute telah dihapus",
	}, nil)
}
