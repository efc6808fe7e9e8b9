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

// LocationHandler triggers position acquisition ("Dekat Saya")
type LocationHandler struct {
	locationUC *usecase.LocationUseCase
	logger     *zap.Logger
}

func NewLocationHandler(locationUC *usecase.LocationUseCase, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		logger:     logger,
	}
}

// Locate acquires the current position. The body may carry a
// client-reported device fix.
func (h *LocationHandler) Locate(c *fiber.Ctx) error {
	var req dto.LocateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
		if err := validator.Validate(&req); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
	}

	result, err := h.locationUC.Locate(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
