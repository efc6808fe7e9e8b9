package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wisata-lombok/internal/domain"
	"github.com/wisata-lombok/internal/pkg/errors"
	"github.com/wisata-lombok/internal/pkg/utils"
	"github.com/wisata-lombok/internal/pkg/validator"
	"github.com/wisata-lombok/internal/usecase"
	"github.com/wisata-lombok/internal/usecase/dto"
	"go.uber.org/zap"
)

// WisataHandler serves catalog views: filtered lists, detail, featured and
// distance-sorted results
type WisataHandler struct {
	wisataUC   *usecase.WisataUseCase
	locationUC *usecase.LocationUseCase
	logger     *zap.Logger
}

func NewWisataHandler(
	wisataUC *usecase.WisataUseCase,
	locationUC *usecase.LocationUseCase,
	logger *zap.Logger,
) *WisataHandler {
	return &WisataHandler{
		wisataUC:   wisataUC,
		locationUC: locationUC,
		logger:     logger,
	}
}

// List returns the catalog filtered by wilayah/kategori/cari query params
func (h *WisataHandler) List(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result := h.wisataUC.List(domain.FilterCriteria{
		Region:   req.Region,
		Category: req.Category,
		Search:   req.Search,
	})

	return utils.SendSuccess(c, fiber.Map{
		"wisata": result,
	}, &utils.Meta{
		Total: len(result),
	})
}

// GetByID returns one destination
func (h *WisataHandler) GetByID(c *fiber.Ctx) error {
	w, err := h.wisataUC.GetByID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, w, nil)
}

// Featured returns the beranda highlight entries
func (h *WisataHandler) Featured(c *fiber.Ctx) error {
	n := c.QueryInt("limit", 3)
	result := h.wisataUC.Featured(n)

	return utils.SendSuccess(c, fiber.Map{
		"wisata": result,
	}, &utils.Meta{
		Total: len(result),
	})
}

// Nearby resolves the current position (accepting a client-reported fix in
// the body) and returns the catalog sorted by distance from it
func (h *WisataHandler) Nearby(c *fiber.Ctx) error {
	var locReq dto.LocateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&locReq); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
		if err := validator.Validate(&locReq); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
	}

	if _, err := h.locationUC.Locate(c.Context(), locReq); err != nil {
		return utils.SendError(c, err)
	}

	var filterReq dto.FilterRequest
	if err := c.QueryParser(&filterReq); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.wisataUC.Nearby(domain.FilterCriteria{
		Region:   filterReq.Region,
		Category: filterReq.Category,
		Search:   filterReq.Search,
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
