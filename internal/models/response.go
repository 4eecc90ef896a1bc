package models

// TechnicalInfo holds passage lines classified by kind, in source order.
type TechnicalInfo struct {
	Procedures     []string
	Specifications []string
	Warnings       []string
	Tools          []string
}

// ResponseCategory names the template that produced a response.
type ResponseCategory string

const (
	CategoryNoMatch        ResponseCategory = "no_match"
	CategoryLowConfidence  ResponseCategory = "low_confidence"
	CategoryEngine         ResponseCategory = "engine"
	CategoryBrakes         ResponseCategory = "brakes"
	CategoryLubrication    ResponseCategory = "lubrication"
	CategoryElectrical     ResponseCategory = "electrical"
	CategoryTires          ResponseCategory = "tires"
	CategoryTransmission   ResponseCategory = "transmission"
	CategoryGeneral        ResponseCategory = "general"
	CategoryGreeting       ResponseCategory = "greeting"
	CategoryTechnicalError ResponseCategory = "technical_error"
)

// SynthesizedResponse is the text answer plus the template that produced it.
type SynthesizedResponse struct {
	Text       string
	Category   ResponseCategory
	Confidence float64
}

// ChatReply is the result of one chat turn.
type ChatReply struct {
	Response string
	Category ResponseCategory
	Matches  int
	EndCall  bool
}
