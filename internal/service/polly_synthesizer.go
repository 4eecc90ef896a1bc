package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"rag-mecanico/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/polly/types"
	"github.com/aws/smithy-go"
)

// PollyAPI is the subset of the Polly client used for synthesis.
type PollyAPI interface {
	SynthesizeSpeech(ctx context.Context, params *polly.SynthesizeSpeechInput, optFns ...func(*polly.Options)) (*polly.SynthesizeSpeechOutput, error)
}

// PollySynthesizer implements SpeechSynthesizer on Amazon Polly, producing mp3.
type PollySynthesizer struct {
	client PollyAPI
}

func NewPollySynthesizer(client PollyAPI) *PollySynthesizer {
	return &PollySynthesizer{client: client}
}

func (p *PollySynthesizer) Synthesize(ctx context.Context, req models.SynthesisRequest) ([]byte, error) {
	input := &polly.SynthesizeSpeechInput{
		Text:         aws.String(req.Text),
		OutputFormat: types.OutputFormatMp3,
		VoiceId:      types.VoiceId(req.VoiceID),
		Engine:       pollyEngine(req.Engine),
		TextType:     types.TextTypeText,
	}
	if req.IsSSML {
		input.TextType = types.TextTypeSsml
	}
	if req.LanguageCode != "" {
		input.LanguageCode = types.LanguageCode(req.LanguageCode)
	}
	if req.SampleRate != "" {
		input.SampleRate = aws.String(req.SampleRate)
	}

	out, err := p.client.SynthesizeSpeech(ctx, input)
	if err != nil {
		return nil, classifyPollyError(req.Engine, err)
	}
	if out.AudioStream == nil {
		return nil, &ServiceError{Engine: string(req.Engine), Err: errors.New("empty audio stream")}
	}
	defer out.AudioStream.Close()

	audio, err := io.ReadAll(out.AudioStream)
	if err != nil {
		return nil, &ServiceError{Engine: string(req.Engine), Err: fmt.Errorf("failed to read audio stream: %w", err)}
	}
	return audio, nil
}

func pollyEngine(engine models.SpeechEngine) types.Engine {
	switch engine {
	case models.SpeechEngineGenerative:
		return types.EngineGenerative
	case models.SpeechEngineNeural:
		return types.EngineNeural
	default:
		return types.EngineStandard
	}
}

// classifyPollyError marks API and transport failures as ServiceError so the
// fallback chain moves on. Cancellation is the caller's decision and is
// returned as is.
func classifyPollyError(engine models.SpeechEngine, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr smithy.APIError
	var opErr *smithy.OperationError
	if errors.As(err, &apiErr) || errors.As(err, &opErr) {
		return &ServiceError{Engine: string(engine), Err: err}
	}
	return err
}
