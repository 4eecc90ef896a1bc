package models

// Vector store connectivity as reported by the health check.
const (
	VectorStoreConnected    = "connected"
	VectorStoreDisconnected = "disconnected"
	VectorStoreError        = "error"
)

type HealthReport struct {
	Status                string
	AgentName             string
	SpeechConfigured      bool
	VectorStoreConfigured bool
	VectorStoreStatus     string
	IndexStats            *IndexStats
	ModelLoaded           bool
	VoiceService          string
	EmbeddingModel        string
	IndexName             string
}

type IndexStatus struct {
	IndexReady  bool
	IndexExists bool
	IndexName   string
	ModelLoaded bool
	IndexStats  *IndexStats
	Agent       string
}
