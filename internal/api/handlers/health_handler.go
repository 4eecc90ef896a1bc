package handlers

import (
	"rag-mecanico/internal/dto"
	"rag-mecanico/internal/models"
	"rag-mecanico/internal/service"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	healthService *service.HealthService
}

func NewHealthHandler(healthService *service.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// Health godoc
// @Summary Service health
// @Description Always 200; backend problems are reported in vector_store_status
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	report := h.healthService.Health(c.Context())

	return c.JSON(dto.HealthResponse{
		Status:                report.Status,
		AgentName:             report.AgentName,
		SpeechConfigured:      report.SpeechConfigured,
		VectorStoreConfigured: report.VectorStoreConfigured,
		VectorStoreStatus:     report.VectorStoreStatus,
		IndexStats:            toIndexStats(report.IndexStats),
		ModelLoaded:           report.ModelLoaded,
		VoiceService:          report.VoiceService,
		EmbeddingModel:        report.EmbeddingModel,
		IndexName:             report.IndexName,
	})
}

// IndexStatus godoc
// @Summary Vector index status
// @Tags health
// @Produce json
// @Success 200 {object} dto.IndexStatusResponse
// @Router /api/index-status [get]
func (h *HealthHandler) IndexStatus(c *fiber.Ctx) error {
	status := h.healthService.IndexStatus(c.Context())

	return c.JSON(dto.IndexStatusResponse{
		IndexReady:  status.IndexReady,
		IndexExists: status.IndexExists,
		IndexName:   status.IndexName,
		ModelLoaded: status.ModelLoaded,
		IndexStats:  toIndexStats(status.IndexStats),
		Agent:       status.Agent,
	})
}

func toIndexStats(stats *models.IndexStats) *dto.IndexStatsResponse {
	if stats == nil {
		return nil
	}
	return &dto.IndexStatsResponse{
		Name:      stats.Name,
		Count:     stats.Count,
		Dimension: stats.Dimension,
		Metric:    stats.Metric,
	}
}
