package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wisata-lombok/internal/domain"
	"github.com/wisata-lombok/internal/pkg/errors"
	"github.com/wisata-lombok/internal/pkg/utils"
	"github.com/wisata-lombok/internal/usecase"
	"github.com/wisata-lombok/internal/usecase/dto"
	"go.uber.org/zap"
)

// MarkerHandler serves marker descriptors for the map widget
type MarkerHandler struct {
	markerUC *usecase.MarkerUseCase
	logger   *zap.Logger
}

func NewMarkerHandler(markerUC *usecase.MarkerUseCase, logger *zap.Logger) *MarkerHandler {
	return &MarkerHandler{
		markerUC: markerUC,
		logger:   logger,
	}
}

// Markers returns descriptors for the filtered catalog. The highlight query
// param enlarges one pin.
func (h *MarkerHandler) Markers(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	markers := h.markerUC.Markers(domain.FilterCriteria{
		Region:   req.Region,
		Category: req.Category,
		Search:   req.Search,
	}, req.Highlight)

	return utils.SendSuccess(c, fiber.Map{
		"markers": markers,
	}, &utils.Meta{
		Total: len(markers),
	})
}
