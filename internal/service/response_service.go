package service

import (
	"fmt"
	"sort"
	"strings"

	"rag-mecanico/internal/models"

	"go.uber.org/zap"
)

const (
	// ConfidenceThreshold is the minimum similarity a match needs to be used
	// as grounding for an answer.
	ConfidenceThreshold = 0.70
	// DisclaimerThreshold: general answers below this confidence recommend
	// a physical inspection.
	DisclaimerThreshold = 0.80

	maxGroundingMatches = 3
)

// ResponseService turns retrieved passages into a templated answer. It never
// generates free text: every answer is one of the fixed templates with
// extracted lines interpolated.
type ResponseService struct {
	agentName string
	templates []responseTemplate
	logger    *zap.Logger
}

func NewResponseService(agentName string, logger *zap.Logger) *ResponseService {
	return &ResponseService{
		agentName: agentName,
		templates: categoryTemplates,
		logger:    logger,
	}
}

// Synthesize picks and fills the template for query. Matches are expected
// best first but are re-sorted anyway. Any failure while rendering yields
// the technical error apology instead of a partial answer.
func (s *ResponseService) Synthesize(query string, matches []models.Match) (resp models.SynthesizedResponse) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Response synthesis failed", zap.Any("panic", r), zap.String("query", query))
			resp = models.SynthesizedResponse{
				Text:     TechnicalErrorResponse,
				Category: models.CategoryTechnicalError,
			}
		}
	}()

	if len(matches) == 0 {
		return models.SynthesizedResponse{Text: NoMatchResponse, Category: models.CategoryNoMatch}
	}

	relevant := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if m.Score > ConfidenceThreshold {
			relevant = append(relevant, m)
		}
	}
	if len(relevant) == 0 {
		return s.lowConfidence(query)
	}
	sort.SliceStable(relevant, func(i, j int) bool { return relevant[i].Score > relevant[j].Score })

	confidence := relevant[0].Score
	if len(relevant) > maxGroundingMatches {
		relevant = relevant[:maxGroundingMatches]
	}

	passages := make([]string, 0, len(relevant))
	for _, m := range relevant {
		passages = append(passages, m.Text())
	}
	info := ExtractTechnicalInfo(strings.Join(passages, "\n"))

	tmpl := s.selectTemplate(strings.ToLower(query))
	text := tmpl.render(s.agentName, info)
	if tmpl.category == models.CategoryGeneral && confidence < DisclaimerThreshold {
		text += "\n\n" + lowConfidenceDisclaimer
	}

	s.logger.Debug("Response synthesized",
		zap.String("category", string(tmpl.category)),
		zap.Float64("confidence", confidence),
		zap.Int("grounding", len(relevant)),
	)

	return models.SynthesizedResponse{Text: text, Category: tmpl.category, Confidence: confidence}
}

// GenerateResponse is Synthesize without the metadata.
func (s *ResponseService) GenerateResponse(query string, matches []models.Match) string {
	return s.Synthesize(query, matches).Text
}

func (s *ResponseService) selectTemplate(lowerQuery string) responseTemplate {
	for _, t := range s.templates {
		if t.matches(lowerQuery) {
			return t
		}
	}
	return s.templates[len(s.templates)-1]
}

func (s *ResponseService) lowConfidence(query string) models.SynthesizedResponse {
	text := lowConfidenceGeneralResponse
	if containsAny(strings.ToLower(query), lowConfidenceKeywords) {
		text = lowConfidenceEngineResponse
	}
	return models.SynthesizedResponse{Text: text, Category: models.CategoryLowConfidence}
}

// Greeting is the fixed introduction, personalized with the agent name.
func (s *ResponseService) Greeting() string {
	return fmt.Sprintf(greetingResponse, s.agentName)
}

// IsGreeting reports whether the message opens a conversation.
func IsGreeting(message string) bool {
	return containsAny(strings.ToLower(message), greetingKeywords)
}
