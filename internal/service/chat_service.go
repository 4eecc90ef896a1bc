package service

import (
	"context"
	"errors"
	"strings"

	"rag-mecanico/internal/models"

	"go.uber.org/zap"
)

// KnowledgeSearcher finds reference passages for a question.
type KnowledgeSearcher interface {
	Search(ctx context.Context, query string, topK int) ([]models.Match, error)
}

// ChatService answers one user message: greetings get the fixed
// introduction, everything else is retrieved and templated.
type ChatService struct {
	searcher  KnowledgeSearcher
	responder *ResponseService
	logger    *zap.Logger
}

func NewChatService(searcher KnowledgeSearcher, responder *ResponseService, logger *zap.Logger) *ChatService {
	return &ChatService{
		searcher:  searcher,
		responder: responder,
		logger:    logger,
	}
}

func (s *ChatService) Chat(ctx context.Context, message string) (*models.ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, NewValidationError("message", "is required")
	}

	if IsGreeting(message) {
		return &models.ChatReply{
			Response: s.responder.Greeting(),
			Category: models.CategoryGreeting,
		}, nil
	}

	matches, err := s.searcher.Search(ctx, message, 0)
	if err != nil {
		if !errors.Is(err, ErrUnavailable) {
			return nil, err
		}
		s.logger.Warn("Knowledge base unavailable, answering without context", zap.Error(err))
		matches = nil
	}

	resp := s.responder.Synthesize(message, matches)
	s.logger.Info("Chat answered",
		zap.String("category", string(resp.Category)),
		zap.Int("matches", len(matches)),
	)

	return &models.ChatReply{
		Response: resp.Text,
		Category: resp.Category,
		Matches:  len(matches),
	}, nil
}
