package service

import (
	"fmt"
	"strings"

	"rag-mecanico/internal/models"
)

const NoMatchResponse = `No encontré información específica sobre eso en mi base de conocimientos mecánicos.

Como mecánico especializado, te recomiendo:
1. Proporciona más detalles sobre el problema (síntomas, sonidos, modelo del vehículo)
2. Indica cuándo comenzó el problema
3. Menciona si hay códigos de error en el tablero

¿Podrías darme más información para ayudarte mejor?`

const TechnicalErrorResponse = `Lo siento, hubo un error técnico procesando tu consulta mecánica.

Por favor, intenta reformular tu pregunta o contacta directamente con un técnico especializado.`

const lowConfidenceEngineResponse = `Basándome en mi experiencia como mecánico, para problemas de motor necesito más información específica:

**Síntomas comunes a revisar:**
- ¿El motor enciende pero no mantiene el ralentí?
- ¿Hay humo de algún color específico?
- ¿La temperatura sube anormalmente?
- ¿Escuchas ruidos extraños?

**Primeras verificaciones:**
- Nivel de aceite y refrigerante
- Estado de la batería (12.6V en reposo)
- Conexiones eléctricas limpias
- Filtros de aire y combustible

¿Podrías describir exactamente qué síntomas presenta el vehículo?`

const lowConfidenceGeneralResponse = `Como mecánico especializado, necesito más detalles para darte un diagnóstico preciso.

**Por favor comparte:**
- Marca, modelo y año del vehículo
- Síntomas específicos que observas
- Cuándo ocurre el problema
- Sonidos, olores o señales visuales
- Códigos de error (si los hay)

Mientras tanto, verifica:
- Niveles de fluidos (aceite, refrigerante, frenos)
- Estado de la batería
- Presión de neumáticos

¿Qué problema específico tiene tu vehículo?`

const greetingResponse = `¡Hola! Soy %s, tu mecánico especializado en vehículos. Tengo acceso a una amplia base de conocimientos técnicos y manuales de mecánica automotriz.

**Puedo ayudarte con:**
• Diagnóstico de problemas del motor
• Mantenimiento preventivo y correctivo
• Sistema de frenos y suspensión
• Diagnóstico eléctrico y electrónico
• Transmisión manual y automática
• Sistema de refrigeración y lubricación
• Neumáticos y alineación

**Para un mejor diagnóstico, comparte:**
- Marca, modelo y año del vehículo
- Síntomas específicos que observas
- Códigos de error (si los tienes)

¿Qué problema tiene tu vehículo?`

const lowConfidenceDisclaimer = "⚠️ **Recomendación:** Para un diagnóstico más preciso, es recomendable una inspección física del vehículo."

var (
	greetingKeywords      = []string{"hola", "buenos días", "buenas tardes", "saludos", "iniciar", "empezar"}
	lowConfidenceKeywords = []string{"motor", "arranque", "temperatura"}
)

// Display limits. Extraction keeps every line; templates show at most this many.
const (
	maxSpecifications = 3
	maxProcedures     = 3
	maxWarnings       = 2
)

type listStyle int

const (
	bulleted listStyle = iota
	numbered
)

// block is one paragraph of a template: either fixed prose or a list filled
// from extracted lines. A list block with no items renders nothing.
type block struct {
	prose   string
	heading string
	items   func(info models.TechnicalInfo) []string
	limit   int
	style   listStyle
}

func prose(text string) block {
	return block{prose: text}
}

func specifications(heading string) block {
	return block{
		heading: heading,
		items:   func(info models.TechnicalInfo) []string { return info.Specifications },
		limit:   maxSpecifications,
	}
}

func procedures(heading string, style listStyle) block {
	return block{
		heading: heading,
		items:   func(info models.TechnicalInfo) []string { return info.Procedures },
		limit:   maxProcedures,
		style:   style,
	}
}

func warnings() block {
	return block{
		heading: "⚠️ PRECAUCIONES IMPORTANTES",
		items:   func(info models.TechnicalInfo) []string { return info.Warnings },
		limit:   maxWarnings,
	}
}

func (b block) render(info models.TechnicalInfo) string {
	if b.items == nil {
		return b.prose
	}
	items := b.items(info)
	if len(items) == 0 {
		return ""
	}
	if len(items) > b.limit {
		items = items[:b.limit]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s:**", b.heading)
	for i, item := range items {
		if b.style == numbered {
			fmt.Fprintf(&sb, "\n%d. %s", i+1, item)
		} else {
			fmt.Fprintf(&sb, "\n• %s", item)
		}
	}
	return sb.String()
}

// responseTemplate answers one category of question. keywords select it;
// an empty keyword list marks the general fallback.
type responseTemplate struct {
	category models.ResponseCategory
	keywords []string
	title    string
	blocks   []block
}

func (t responseTemplate) matches(lowerQuery string) bool {
	return len(t.keywords) == 0 || containsAny(lowerQuery, t.keywords)
}

func (t responseTemplate) render(agentName string, info models.TechnicalInfo) string {
	parts := []string{fmt.Sprintf("**%s - %s Mecánico**", t.title, agentName)}
	for _, b := range t.blocks {
		if text := b.render(info); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}

// categoryTemplates is evaluated in order; the first template whose keywords
// appear in the query wins, so "motor" beats "frenos" in the same question.
var categoryTemplates = []responseTemplate{
	{
		category: models.CategoryEngine,
		keywords: []string{"motor", "encender", "arrancar", "temperatura", "sobrecalentamiento", "rpm"},
		title:    "DIAGNÓSTICO DE MOTOR",
		blocks: []block{
			specifications("Especificaciones técnicas"),
			procedures("Procedimiento recomendado", numbered),
			prose(`**Verificaciones básicas del motor:**
• Nivel de aceite (entre MIN y MAX en la varilla)
• Temperatura del refrigerante (80-90°C operativo)
• Presión de aceite (2-4 bar a 2000 RPM)
• Estado de filtros (aire, combustible, aceite)

**Síntomas de alerta:**
• Luz de temperatura en tablero
• Ruidos metálicos o golpeteo
• Pérdida de potencia
• Consumo excesivo de combustible`),
			warnings(),
		},
	},
	{
		category: models.CategoryBrakes,
		keywords: []string{"frenos", "frenar", "pastillas", "disco", "pedal"},
		title:    "SISTEMA DE FRENOS",
		blocks: []block{
			procedures("Procedimiento técnico", numbered),
			prose(`**Inspección de frenos:**
• Espesor de pastillas (mínimo 3mm)
• Estado de discos (sin ranuras profundas)
• Nivel de líquido de frenos (DOT 3 o DOT 4)
• Flexibilidad de mangueras

**Señales de mantenimiento:**
• Chirrido al frenar (pastillas gastadas)
• Vibración en pedal (discos deformados)
• Pedal esponjoso (aire en sistema)
• Distancia de frenado aumentada`),
			specifications("Especificaciones"),
			warnings(),
		},
	},
	{
		category: models.CategoryLubrication,
		keywords: []string{"aceite", "lubricante", "cambio", "viscosidad", "filtro"},
		title:    "SISTEMA DE LUBRICACIÓN",
		blocks: []block{
			specifications("Especificaciones del aceite"),
			prose(`**Cambio de aceite paso a paso:**
1. Motor tibio (no caliente) para mejor drenado
2. Drenar aceite usado completamente
3. Reemplazar filtro de aceite nuevo
4. Rellenar con aceite especificado
5. Verificar nivel después de 5 minutos

**Intervalos de mantenimiento:**
• Aceite sintético: 10,000-15,000 km
• Aceite convencional: 5,000-7,500 km
• Filtro: cada cambio de aceite
• Verificar nivel: semanalmente`),
			procedures("Procedimientos adicionales", bulleted),
			warnings(),
		},
	},
	{
		category: models.CategoryElectrical,
		keywords: []string{"batería", "eléctrico", "corriente", "alternador", "voltaje"},
		title:    "SISTEMA ELÉCTRICO",
		blocks: []block{
			specifications("Especificaciones eléctricas"),
			prose(`**Diagnóstico de batería y alternador:**
• Voltaje batería en reposo: 12.6V
• Voltaje con motor encendido: 13.8-14.4V
• Densidad del electrolito: 1.265 g/cm³
• Terminales limpios y apretados

**Pruebas básicas:**
1. Multímetro en terminales de batería
2. Prueba de carga (arranque del motor)
3. Verificar correa del alternador
4. Revisar conexiones a masa`),
			procedures("Procedimientos específicos", bulleted),
			warnings(),
		},
	},
	{
		category: models.CategoryTires,
		keywords: []string{"llantas", "neumáticos", "presión", "inflado", "desgaste"},
		title:    "NEUMÁTICOS Y SUSPENSIÓN",
		blocks: []block{
			specifications("Especificaciones"),
			prose(`**Presiones recomendadas (verificar etiqueta del vehículo):**
• Neumáticos delanteros: 32-35 PSI
• Neumáticos traseros: 30-33 PSI
• Rueda de repuesto: 60 PSI
• Verificación: neumático frío

**Inspección visual:**
• Profundidad de banda (mínimo 1.6mm)
• Desgaste uniforme en toda la banda
• Grietas en flancos
• Objetos clavados (clavos, tornillos)`),
			procedures("Procedimiento recomendado", numbered),
			warnings(),
		},
	},
	{
		category: models.CategoryTransmission,
		keywords: []string{"transmisión", "caja", "cambios", "embrague", "automática"},
		title:    "TRANSMISIÓN",
		blocks: []block{
			procedures("Procedimientos técnicos", bulleted),
			prose(`**Mantenimiento de transmisión:**
• Manual: Aceite cada 60,000 km
• Automática: Fluido cada 80,000 km
• Embrague: Inspección cada 40,000 km
• Verificar fugas regularmente

**Síntomas de problemas:**
• Dificultad para cambiar marchas
• Ruidos al cambiar
• Embrague que patina
• Tirones al acelerar`),
			specifications("Especificaciones"),
			warnings(),
		},
	},
	{
		category: models.CategoryGeneral,
		title:    "CONSULTA TÉCNICA",
		blocks: []block{
			procedures("Información técnica relevante", bulleted),
			prose(`**Diagnóstico general recomendado:**
1. Inspección visual completa
2. Verificación de códigos de error (OBD)
3. Pruebas específicas según síntomas
4. Consulta de manual técnico del vehículo

**Herramientas básicas necesarias:**
• Multímetro digital
• Scanner OBD2
• Juego de llaves métricas
• Manómetros de presión`),
			specifications("Datos técnicos"),
			warnings(),
		},
	},
}
