package handlers

import (
	"encoding/base64"

	"rag-mecanico/internal/dto"
	"rag-mecanico/internal/service"
	"rag-mecanico/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SpeechHandler struct {
	speechService *service.SpeechService
	logger        *zap.Logger
}

func NewSpeechHandler(speechService *service.SpeechService, logger *zap.Logger) *SpeechHandler {
	return &SpeechHandler{
		speechService: speechService,
		logger:        logger,
	}
}

// Speak godoc
// @Summary Synthesize speech
// @Description Voices text with Amazon Polly (generative, then neural, then standard). When every engine fails or no credentials are configured, useBrowserTTS tells the client to speak the text itself.
// @Tags speech
// @Accept json
// @Produce json
// @Param request body dto.SpeakRequest true "Text to speak"
// @Success 200 {object} dto.SpeakResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/speak [post]
func (h *SpeechHandler) Speak(c *fiber.Ctx) error {
	var req dto.SpeakRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	result, err := h.speechService.Speak(c.Context(), req.Text)
	if err != nil {
		if service.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "No text provided",
			})
		}
		h.logger.Error("Speech synthesis failed", zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
		return c.JSON(dto.SpeakResponse{
			UseBrowserTTS: true,
			Text:          req.Text,
			Error:         err.Error(),
		})
	}

	if result.UseBrowserTTS {
		return c.JSON(dto.SpeakResponse{
			UseBrowserTTS: true,
			Text:          result.Text,
			Error:         result.Error,
		})
	}

	audio := base64.StdEncoding.EncodeToString(result.Audio)
	url := "data:audio/mp3;base64," + audio
	return c.JSON(dto.SpeakResponse{
		AudioContent: &audio,
		AudioURL:     &url,
		Engine:       string(result.Engine),
		Tier:         result.Tier,
	})
}
