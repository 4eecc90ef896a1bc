package handlers

import (
	"errors"

	"rag-mecanico/internal/dto"
	"rag-mecanico/internal/service"
	"rag-mecanico/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type KnowledgeHandler struct {
	ragService *service.RAGService
	logger     *zap.Logger
}

func NewKnowledgeHandler(ragService *service.RAGService, logger *zap.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{
		ragService: ragService,
		logger:     logger,
	}
}

// AddKnowledge godoc
// @Summary Add a reference passage
// @Description Embeds the text and stores it under id, replacing any passage with the same id
// @Tags knowledge
// @Accept json
// @Produce json
// @Param request body dto.AddKnowledgeRequest true "Passage"
// @Security Bearer
// @Success 200 {object} dto.AddKnowledgeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/add-knowledge [post]
func (h *KnowledgeHandler) AddKnowledge(c *fiber.Ctx) error {
	var req dto.AddKnowledgeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	rec, err := h.ragService.AddKnowledge(c.Context(), req.ID, req.Text, req.Metadata)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": vErr.Error(),
			})
		case errors.Is(err, service.ErrUnavailable):
			h.logger.Warn("Knowledge base unavailable", zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Knowledge base not available",
			})
		default:
			h.logger.Error("Failed to add knowledge", zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to add knowledge",
			})
		}
	}

	return c.JSON(dto.AddKnowledgeResponse{
		Success: true,
		Message: "Conocimiento agregado exitosamente",
		DocID:   rec.ID,
	})
}
