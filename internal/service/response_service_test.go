package service

import (
	"strings"
	"testing"

	"rag-mecanico/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func match(id string, score float64, text string) models.Match {
	return models.Match{ID: id, Score: score, Metadata: map[string]any{models.MetadataText: text}}
}

func TestResponseService_Synthesize(t *testing.T) {
	svc := NewResponseService("Miguel", zap.NewNop())

	t.Run("No matches yields the insufficient information answer", func(t *testing.T) {
		resp := svc.Synthesize("ruido raro", nil)

		assert.Equal(t, models.CategoryNoMatch, resp.Category)
		assert.Equal(t, NoMatchResponse, resp.Text)
		assert.Contains(t, resp.Text, "síntomas")
		assert.Contains(t, resp.Text, "códigos de error")
	})

	t.Run("All matches at or below threshold use the low confidence engine checklist", func(t *testing.T) {
		matches := []models.Match{
			match("a", 0.70, "Paso 1: revisar el termostato"),
			match("b", 0.41, "Presión de aceite: 2-4 bar a 2000 RPM"),
		}

		resp := svc.Synthesize("el motor no arranca", matches)

		assert.Equal(t, models.CategoryLowConfidence, resp.Category)
		assert.Equal(t, lowConfidenceEngineResponse, resp.Text)
		assert.NotContains(t, resp.Text, "revisar el termostato")
	})

	t.Run("Low confidence without engine keywords uses the general checklist", func(t *testing.T) {
		resp := svc.Synthesize("hace un ruido", []models.Match{match("a", 0.2, "x")})

		assert.Equal(t, models.CategoryLowConfidence, resp.Category)
		assert.Equal(t, lowConfidenceGeneralResponse, resp.Text)
	})

	t.Run("Engine keywords win over brakes", func(t *testing.T) {
		resp := svc.Synthesize("el motor vibra al pisar los frenos", []models.Match{match("a", 0.9, "Nota: revisar soportes")})

		assert.Equal(t, models.CategoryEngine, resp.Category)
		assert.True(t, strings.HasPrefix(resp.Text, "**DIAGNÓSTICO DE MOTOR - Miguel Mecánico**"))
	})

	t.Run("Tire pressure question renders the PSI specification", func(t *testing.T) {
		matches := []models.Match{
			match("tires-1", 0.85, "Presión recomendada: 32 PSI en frío"),
		}

		resp := svc.Synthesize("¿Qué presión deben tener las llantas?", matches)

		assert.Equal(t, models.CategoryTires, resp.Category)
		assert.Contains(t, resp.Text, "**Especificaciones:**\n• Presión recomendada: 32 PSI en frío")
		assert.NotContains(t, resp.Text, "PRECAUCIONES IMPORTANTES", "empty warning list is omitted")
		assert.InDelta(t, 0.85, resp.Confidence, 1e-9)
	})

	t.Run("Lists are capped", func(t *testing.T) {
		text := strings.Join([]string{
			"Paso 1", "Paso 2", "Paso 3", "Paso 4",
			"Valor A", "Valor B", "Valor C", "Valor D",
			"Advertencia A", "Advertencia B", "Advertencia C",
		}, "\n")

		resp := svc.Synthesize("revisar frenos", []models.Match{match("a", 0.95, text)})

		assert.Equal(t, models.CategoryBrakes, resp.Category)
		assert.Contains(t, resp.Text, "3. Paso 3")
		assert.NotContains(t, resp.Text, "Paso 4")
		assert.Contains(t, resp.Text, "• Valor C")
		assert.NotContains(t, resp.Text, "Valor D")
		assert.Contains(t, resp.Text, "• Advertencia B")
		assert.NotContains(t, resp.Text, "Advertencia C")
	})

	t.Run("Only the top three relevant matches ground the answer", func(t *testing.T) {
		matches := []models.Match{
			match("a", 0.91, "Valor uno"),
			match("b", 0.90, "Valor dos"),
			match("c", 0.89, "Nota: tres"),
			match("d", 0.88, "Advertencia: cuatro"),
			match("e", 0.50, "Advertencia: cinco"),
		}

		resp := svc.Synthesize("consulta de batería", matches)

		assert.Equal(t, models.CategoryElectrical, resp.Category)
		assert.Contains(t, resp.Text, "Nota: tres")
		assert.NotContains(t, resp.Text, "cuatro")
		assert.NotContains(t, resp.Text, "cinco")
	})

	t.Run("General answer adds a disclaimer below 0.80", func(t *testing.T) {
		resp := svc.Synthesize("qué revisar antes de un viaje", []models.Match{match("a", 0.75, "Nota: revisar luces")})

		assert.Equal(t, models.CategoryGeneral, resp.Category)
		assert.True(t, strings.HasSuffix(resp.Text, lowConfidenceDisclaimer))
	})

	t.Run("General answer at 0.80 has no disclaimer", func(t *testing.T) {
		resp := svc.Synthesize("qué revisar antes de un viaje", []models.Match{match("a", 0.80, "Nota: revisar luces")})

		assert.Equal(t, models.CategoryGeneral, resp.Category)
		assert.NotContains(t, resp.Text, lowConfidenceDisclaimer)
	})

	t.Run("Unsorted matches are ranked before use", func(t *testing.T) {
		matches := []models.Match{
			match("low", 0.72, "Valor bajo"),
			match("high", 0.93, "Valor alto"),
		}

		resp := svc.Synthesize("cambio de aceite", matches)

		assert.Equal(t, models.CategoryLubrication, resp.Category)
		assert.InDelta(t, 0.93, resp.Confidence, 1e-9)
		assert.Less(t, strings.Index(resp.Text, "Valor alto"), strings.Index(resp.Text, "Valor bajo"))
	})
}

func TestResponseService_TemplatePriority(t *testing.T) {
	svc := NewResponseService("Miguel", zap.NewNop())
	grounding := []models.Match{match("a", 0.9, "Nota: revisar en el taller")}

	tests := map[string]struct {
		query string
		want  models.ResponseCategory
	}{
		"engine":       {query: "el carro no quiere encender", want: models.CategoryEngine},
		"brakes":       {query: "las pastillas chillan", want: models.CategoryBrakes},
		"lubrication":  {query: "qué viscosidad uso", want: models.CategoryLubrication},
		"electrical":   {query: "el alternador hace ruido", want: models.CategoryElectrical},
		"tires":        {query: "cada cuánto roto las llantas", want: models.CategoryTires},
		"transmission": {query: "el embrague patina", want: models.CategoryTransmission},
		"general":      {query: "qué revisar antes de un viaje", want: models.CategoryGeneral},

		"engine over brakes":          {query: "el motor tiembla al frenar", want: models.CategoryEngine},
		"brakes over lubrication":     {query: "cambio el líquido de frenos", want: models.CategoryBrakes},
		"lubrication over electrical": {query: "el filtro y la batería", want: models.CategoryLubrication},
		"electrical over tires":       {query: "voltaje bajo y presión baja", want: models.CategoryElectrical},
		"tires over transmission":     {query: "desgaste de llantas y del embrague", want: models.CategoryTires},
		"transmission over general":   {query: "la transmisión automática", want: models.CategoryTransmission},

		// "cambios" contains "cambio", so gear questions phrased that way
		// are answered by the lubrication template.
		"cambios matches lubrication": {query: "los cambios entran duros", want: models.CategoryLubrication},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Synthesize(tt.query, grounding).Category)
		})
	}
}

func TestResponseService_TechnicalErrorOnPanic(t *testing.T) {
	svc := NewResponseService("Miguel", zap.NewNop())
	svc.templates = []responseTemplate{{
		category: models.CategoryGeneral,
		title:    "ROTO",
		blocks: []block{{
			heading: "x",
			items:   func(models.TechnicalInfo) []string { panic("boom") },
			limit:   1,
		}},
	}}

	var resp models.SynthesizedResponse
	require.NotPanics(t, func() {
		resp = svc.Synthesize("algo", []models.Match{match("a", 0.9, "Nota")})
	})
	assert.Equal(t, models.CategoryTechnicalError, resp.Category)
	assert.Equal(t, TechnicalErrorResponse, resp.Text)
	assert.Equal(t, TechnicalErrorResponse, svc.GenerateResponse("algo", []models.Match{match("a", 0.9, "Nota")}))
}

func TestGreeting(t *testing.T) {
	svc := NewResponseService("Miguel", zap.NewNop())

	assert.True(t, strings.HasPrefix(svc.Greeting(), "¡Hola! Soy Miguel,"))
	assert.True(t, IsGreeting("Hola, buenos días"))
	assert.True(t, IsGreeting("BUENAS TARDES"))
	assert.False(t, IsGreeting("mis frenos chirrían"))
}
