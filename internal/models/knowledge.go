package models

import "time"

// Metadata keys written on every knowledge record.
const (
	MetadataText      = "text"
	MetadataAgent     = "agent"
	MetadataCategory  = "category"
	MetadataAddedDate = "added_date"
)

// KnowledgeCategory tags every record inserted by this service.
const KnowledgeCategory = "mecanica_automotriz"

// KnowledgeRecord is a reference passage stored in the vector index.
type KnowledgeRecord struct {
	ID        string         `db:"id"`
	Embedding []float32      `db:"embedding"`
	Metadata  map[string]any `db:"metadata"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// Text returns the indexed passage.
func (r *KnowledgeRecord) Text() string {
	return MetadataString(r.Metadata, MetadataText)
}

// Match is a single similarity search hit. Score is the cosine similarity in [-1, 1].
type Match struct {
	ID       string         `json:"id"`
	Score    float64        `json:"score"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Text returns the original passage attached to the match, or "" when absent.
func (m Match) Text() string {
	return MetadataString(m.Metadata, MetadataText)
}

// IndexStats describes the vector index for health reporting.
type IndexStats struct {
	Name      string `json:"name"`
	Count     int64  `json:"count"`
	Dimension int    `json:"dimension"`
	Metric    string `json:"metric"`
}

// MetadataString reads a string field from a metadata map.
func MetadataString(metadata map[string]any, key string) string {
	if metadata == nil {
		return ""
	}
	s, _ := metadata[key].(string)
	return s
}
