package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wisata-lombok/internal/pkg/utils"
	"github.com/wisata-lombok/internal/usecase"
	"go.uber.org/zap"
)

// StatsHandler serves the beranda statistics
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics returns catalog counters
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetStatistics(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}
