package dto

type ChatRequest struct {
	Message string `json:"message" example:"¿Qué presión deben tener las llantas?"`
}

type ChatResponse struct {
	Response string `json:"response"`
	Category string `json:"category"`
	EndCall  bool   `json:"end_call"`
}
