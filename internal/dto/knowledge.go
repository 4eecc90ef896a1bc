package dto

type AddKnowledgeRequest struct {
	ID       string         `json:"id" example:"frenos-001"`
	Text     string         `json:"text" example:"Espesor mínimo de pastillas de freno: 3mm"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type AddKnowledgeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	DocID   string `json:"doc_id"`
}
