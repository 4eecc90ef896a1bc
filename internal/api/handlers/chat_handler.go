package handlers

import (
	"rag-mecanico/internal/dto"
	"rag-mecanico/internal/models"
	"rag-mecanico/internal/service"
	"rag-mecanico/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Chat godoc
// @Summary Ask the mechanic
// @Description Answers a vehicle question from the knowledge base using fixed diagnostic templates
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "User message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	reply, err := h.chatService.Chat(c.Context(), req.Message)
	if err != nil {
		if service.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "No message provided",
			})
		}
		h.logger.Error("Chat failed", zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
		return c.JSON(dto.ChatResponse{
			Response: service.TechnicalErrorResponse,
			Category: string(models.CategoryTechnicalError),
		})
	}

	return c.JSON(dto.ChatResponse{
		Response: reply.Response,
		Category: string(reply.Category),
		EndCall:  reply.EndCall,
	})
}
