package dto

type IndexStatsResponse struct {
	Name      string `json:"name"`
	Count     int64  `json:"count"`
	Dimension int    `json:"dimension"`
	Metric    string `json:"metric"`
}

type HealthResponse struct {
	Status                string              `json:"status"`
	AgentName             string              `json:"agent_name"`
	SpeechConfigured      bool                `json:"speech_configured"`
	VectorStoreConfigured bool                `json:"vector_store_configured"`
	VectorStoreStatus     string              `json:"vector_store_status"`
	IndexStats            *IndexStatsResponse `json:"index_stats"`
	ModelLoaded           bool                `json:"model_loaded"`
	VoiceService          string              `json:"voice_service"`
	EmbeddingModel        string              `json:"embedding_model"`
	IndexName             string              `json:"index_name"`
}

type IndexStatusResponse struct {
	IndexReady  bool                `json:"index_ready"`
	IndexExists bool                `json:"index_exists"`
	IndexName   string              `json:"index_name"`
	ModelLoaded bool                `json:"model_loaded"`
	IndexStats  *IndexStatsResponse `json:"index_stats"`
	Agent       string              `json:"agent"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
