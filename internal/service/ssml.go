package service

import (
	"regexp"
	"strings"
)

var emphasizedTerms = []string{
	"motor", "frenos", "transmisión", "batería", "aceite", "neumáticos",
	"presión", "temperatura", "voltaje", "diagnóstico", "mantenimiento", "especificación",
}

// Punctuation only earns a pause when it ends a phrase, so "12.6V" and
// "10,000 km" are read as numbers. Closing bold markup ("**Nota:**") still
// ends a phrase; the break goes after it.
var (
	sentenceEnd = regexp.MustCompile(`([.!?]\*{0,2})(\s|$)`)
	commaPause  = regexp.MustCompile(`(,\*{0,2})(\s|$)`)
	colonPause  = regexp.MustCompile(`(:\*{0,2})(\s|$)`)
)

const (
	sentenceBreak = `<break time="700ms"/>`
	commaBreak    = `<break time="300ms"/>`
	colonBreak    = `<break time="400ms"/>`
	warningBreak  = `<break time="500ms"/>`
	warningSign   = "⚠️"
)

// AddPronunciationEmphasis wraps every whole-word occurrence of the technical
// vocabulary in a moderate emphasis tag.
func AddPronunciationEmphasis(text string) string {
	for _, term := range emphasizedTerms {
		text = replaceWholeWord(text, term, `<emphasis level="moderate">`+term+`</emphasis>`)
	}
	return text
}

// AddNaturalPauses inserts breaks after sentence ends, commas and colons, and
// before warning signs.
func AddNaturalPauses(text string) string {
	text = sentenceEnd.ReplaceAllString(text, "${1}"+sentenceBreak+"${2}")
	text = commaPause.ReplaceAllString(text, "${1}"+commaBreak+"${2}")
	text = colonPause.ReplaceAllString(text, "${1}"+colonBreak+"${2}")
	text = strings.ReplaceAll(text, warningSign, warningBreak+warningSign)
	return text
}

// GenerativeSSML renders text for the generative engine: slower and lower
// with soft automatic breaths.
func GenerativeSSML(text string) string {
	return `<speak><prosody rate="90%" pitch="-3%" volume="medium">` +
		`<amazon:auto-breaths volume="x-soft" frequency="low">` +
		annotate(text) +
		`</amazon:auto-breaths></prosody></speak>`
}

// NeuralSSML renders text for the neural engine with dynamic range
// compression and a slightly deeper voice.
func NeuralSSML(text string) string {
	return `<speak><prosody rate="95%" pitch="-2%" volume="loud">` +
		`<amazon:effect name="drc"><amazon:effect vocal-tract-length="+5%">` +
		annotate(text) +
		`</amazon:effect></amazon:effect></prosody></speak>`
}

func annotate(text string) string {
	return AddNaturalPauses(AddPronunciationEmphasis(escapeXML(text)))
}

// Newlines stay literal so the pause patterns still see them.
var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeXML(text string) string {
	return xmlEscaper.Replace(text)
}
