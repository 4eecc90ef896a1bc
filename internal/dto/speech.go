package dto

type SpeakRequest struct {
	Text string `json:"text" example:"Revisa la presión de los neumáticos en frío."`
}

// SpeakResponse carries mp3 audio, or useBrowserTTS=true with the text to
// voice locally. Audio fields are null in the fallback case.
type SpeakResponse struct {
	AudioContent  *string `json:"audioContent"`
	AudioURL      *string `json:"audioUrl"`
	UseBrowserTTS bool    `json:"useBrowserTTS"`
	Engine        string  `json:"engine,omitempty"`
	Tier          int     `json:"tier,omitempty"`
	Text          string  `json:"text,omitempty"`
	Error         string  `json:"error,omitempty"`
}
