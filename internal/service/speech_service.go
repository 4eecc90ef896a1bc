package service

import (
	"context"
	"errors"
	"strings"

	"rag-mecanico/internal/models"
	"rag-mecanico/pkg/config"

	"go.uber.org/zap"
)

// SpeechSynthesizer turns one request into audio bytes. Rejections by the
// remote service must be reported as *ServiceError.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, req models.SynthesisRequest) ([]byte, error)
}

// SpeechService voices answers through a fixed chain of engines, each tried
// once: generative, then neural, then standard. When every tier is rejected
// or no credentials are configured, it tells the client to synthesize
// locally.
type SpeechService struct {
	synth  SpeechSynthesizer
	config *config.SpeechConfig
	logger *zap.Logger
}

// NewSpeechService accepts a nil synthesizer to mean "no credentials".
func NewSpeechService(synth SpeechSynthesizer, cfg *config.SpeechConfig, logger *zap.Logger) *SpeechService {
	return &SpeechService{
		synth:  synth,
		config: cfg,
		logger: logger,
	}
}

// Configured reports whether remote synthesis is available.
func (s *SpeechService) Configured() bool {
	return s.synth != nil
}

func (s *SpeechService) Speak(ctx context.Context, text string) (*models.SpeechResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, NewValidationError("text", "is required")
	}

	if s.synth == nil {
		s.logger.Warn("Speech credentials not configured, using browser synthesis")
		return &models.SpeechResult{UseBrowserTTS: true, Text: text}, nil
	}

	var lastErr error
	for i, req := range s.tiers(text) {
		audio, err := s.synth.Synthesize(ctx, req)
		if err == nil {
			s.logger.Info("Speech synthesized",
				zap.String("engine", string(req.Engine)),
				zap.Int("tier", i+1),
				zap.Int("bytes", len(audio)),
			)
			return &models.SpeechResult{Audio: audio, Engine: req.Engine, Tier: i + 1}, nil
		}

		var svcErr *ServiceError
		if !errors.As(err, &svcErr) {
			return nil, err
		}
		s.logger.Warn("Speech engine failed", zap.String("engine", string(req.Engine)), zap.Error(err))
		lastErr = err
	}

	s.logger.Error("All speech engines failed, using browser synthesis", zap.Error(lastErr))
	return &models.SpeechResult{UseBrowserTTS: true, Text: text, Error: lastErr.Error()}, nil
}

func (s *SpeechService) tiers(text string) []models.SynthesisRequest {
	return []models.SynthesisRequest{
		{
			Text:         GenerativeSSML(text),
			IsSSML:       true,
			VoiceID:      s.config.VoiceID,
			Engine:       models.SpeechEngineGenerative,
			LanguageCode: s.config.LanguageCode,
			SampleRate:   s.config.SampleRate,
		},
		{
			Text:         NeuralSSML(text),
			IsSSML:       true,
			VoiceID:      s.config.VoiceID,
			Engine:       models.SpeechEngineNeural,
			LanguageCode: s.config.LanguageCode,
		},
		{
			Text:    text,
			VoiceID: s.config.VoiceID,
			Engine:  models.SpeechEngineStandard,
		},
	}
}
