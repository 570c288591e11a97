package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	Port        int

	// embeddings
	OpenAIKey            string
	OpenAIEmbeddingModel string

	// chat LLM (OpenAI-compatible endpoint)
	GroqKey       string
	GroqBaseURL   string
	GroqChatModel string

	// rag config
	MaxChunkSize         int
	MinChunkLength       int
	IngestBatchSize      int
	TopKResults          int
	SimilarityThreshold  float64
	ChatContextThreshold float64
}

func Load() (*Config, error) {
	godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		port = 8080
	}

	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Port:        port,

		OpenAIKey:            getEnv("OPENAI_API_KEY", ""),
		OpenAIEmbeddingModel: getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),

		GroqKey:       getEnv("GROQ_API_KEY", ""),
		GroqBaseURL:   getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqChatModel: getEnv("GROQ_CHAT_MODEL", "llama-3.3-70b-versatile"),

		MaxChunkSize:         getEnvInt("MAX_CHUNK_SIZE", 1500),
		MinChunkLength:       getEnvInt("MIN_CHUNK_LENGTH", 50),
		IngestBatchSize:      getEnvInt("INGEST_BATCH_SIZE", 50),
		TopKResults:          getEnvInt("TOP_K_RESULTS", 5),
		SimilarityThreshold:  getEnvFloat("SIMILARITY_THRESHOLD", 0.5),
		ChatContextThreshold: getEnvFloat("CHAT_CONTEXT_THRESHOLD", 0.3),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("SIMILARITY_THRESHOLD must be 0-1, got %f", c.SimilarityThreshold)
	}
	if c.ChatContextThreshold < 0 || c.ChatContextThreshold > 1 {
		return fmt.Errorf("CHAT_CONTEXT_THRESHOLD must be 0-1, got %f", c.ChatContextThreshold)
	}
	if c.MaxChunkSize <= 0 {
		return fmt.Errorf("MAX_CHUNK_SIZE must be positive, got %d", c.MaxChunkSize)
	}
	if c.IngestBatchSize <= 0 {
		return fmt.Errorf("INGEST_BATCH_SIZE must be positive, got %d", c.IngestBatchSize)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
