package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Embedding EmbeddingConfig
	Speech    SpeechConfig
	Auth      AuthConfig
	Agent     AgentConfig
	RAG       RAGConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level  string
	Format string // json or console
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig points at the Postgres instance holding the pgvector index.
type DatabaseConfig struct {
	Host      string
	Port      string
	User      string
	Password  string
	DBName    string
	SSLMode   string
	IndexName string
	Dimension int
}

// Configured reports whether enough settings are present to reach the vector store.
func (c DatabaseConfig) Configured() bool {
	return c.Host != "" && c.DBName != ""
}

type EmbeddingConfig struct {
	Provider     string // hugot or openai
	Model        string
	ModelDir     string
	OpenAIAPIKey string
}

type SpeechConfig struct {
	AccessKey    string
	SecretKey    string
	Region       string
	VoiceID      string
	LanguageCode string
	SampleRate   string
}

// Configured reports whether speech credentials are present.
func (c SpeechConfig) Configured() bool {
	return c.AccessKey != "" && c.SecretKey != ""
}

type AuthConfig struct {
	SecretKey  string
	Expiration time.Duration
}

// Enabled reports whether the knowledge write path requires a bearer token.
func (c AuthConfig) Enabled() bool {
	return c.SecretKey != ""
}

type AgentConfig struct {
	Name string
}

type RAGConfig struct {
	TopK int
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work too (Docker/K8s)
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout := getEnvInt("SERVER_READ_TIMEOUT", 30)
	writeTimeout := getEnvInt("SERVER_WRITE_TIMEOUT", 30)
	jwtExp := getEnvInt("JWT_EXPIRATION_HOURS", 24)

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:      getEnv("DB_HOST", ""),
			Port:      getEnv("DB_PORT", "5432"),
			User:      getEnv("DB_USER", "postgres"),
			Password:  getEnv("DB_PASSWORD", "postgres"),
			DBName:    getEnv("DB_NAME", "mecanico"),
			SSLMode:   getEnv("DB_SSLMODE", "disable"),
			IndexName: getEnv("VECTOR_INDEX_NAME", "mecanica_vehiculos"),
			Dimension: getEnvInt("VECTOR_DIMENSION", 384),
		},
		Embedding: EmbeddingConfig{
			Provider:     getEnv("EMBEDDING_PROVIDER", "hugot"),
			Model:        getEnv("EMBEDDING_MODEL", "sentence-transformers/all-MiniLM-L6-v2"),
			ModelDir:     getEnv("EMBEDDING_MODEL_DIR", "./models"),
			OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		},
		Speech: SpeechConfig{
			AccessKey:    getEnv("AWS_ACCESS_KEY", ""),
			SecretKey:    getEnv("AWS_SECRET_KEY", ""),
			Region:       getEnv("AWS_REGION", "us-east-1"),
			VoiceID:      getEnv("POLLY_VOICE_ID", "Miguel"),
			LanguageCode: getEnv("POLLY_LANGUAGE_CODE", "es-US"),
			SampleRate:   getEnv("POLLY_SAMPLE_RATE", "24000"),
		},
		Auth: AuthConfig{
			SecretKey:  getEnv("KNOWLEDGE_JWT_SECRET", ""),
			Expiration: time.Duration(jwtExp) * time.Hour,
		},
		Agent: AgentConfig{
			Name: getEnv("AGENT_NAME", "Miguel"),
		},
		RAG: RAGConfig{
			TopK: getEnvInt("RAG_TOP_K", 5),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return value
}
