package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wisata-lombok/internal/pkg/utils"
	"github.com/wisata-lombok/internal/usecase"
	"go.uber.org/zap"
)

// EventHandler serves the events page
type EventHandler struct {
	eventUC *usecase.EventUseCase
	logger  *zap.Logger
}

func NewEventHandler(eventUC *usecase.EventUseCase, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		eventUC: eventUC,
		logger:  logger,
	}
}

// List returns the events list
func (h *EventHandler) List(c *fiber.Ctx) error {
	events := h.eventUC.ListEvents()

	return utils.SendSuccess(c, fiber.Map{
		"events": events,
	}, &utils.Meta{
		Total: len(events),
	})
}

// Recommendations returns top-rated destinations
func (h *EventHandler) Recommendations(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 3)
	result := h.eventUC.Recommendations(limit)

	return utils.SendSuccess(c, fiber.Map{
		"wisata": result,
	}, &utils.Meta{
		Total: len(result),
	})
}
