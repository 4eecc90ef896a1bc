package models

// SpeechEngine is the synthesis quality tier requested from the speech service.
type SpeechEngine string

const (
	SpeechEngineGenerative SpeechEngine = "generative"
	SpeechEngineNeural     SpeechEngine = "neural"
	SpeechEngineStandard   SpeechEngine = "standard"
)

// SynthesisRequest is one call to the external speech service.
type SynthesisRequest struct {
	Text         string
	IsSSML       bool
	VoiceID      string
	Engine       SpeechEngine
	LanguageCode string
	SampleRate   string
}

// SpeechResult is either synthesized audio or a signal telling the caller to
// synthesize locally.
type SpeechResult struct {
	Audio         []byte
	Engine        SpeechEngine
	Tier          int
	UseBrowserTTS bool
	Text          string
	Error         string
}
