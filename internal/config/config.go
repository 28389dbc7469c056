package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Pipeline  PipelineConfig
	Knowledge KnowledgeConfig
	Search    SearchConfig
	Ai        AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	ProcessTopic       string
}

type DatabaseConfig struct {
	Connection string
}

type PipelineConfig struct {
	StuckThreshold time.Duration
	ReaperInterval time.Duration
	LogRetention   int // days
}

type KnowledgeConfig struct {
	ActivationThreshold float64
	MinChunkSize        int
	MaxKeywords         int
}

type SearchConfig struct {
	DefaultLimit int
	MinRelevance float64
}

type AIConfig struct {
	Provider       string // "ollama" or "disabled"
	OllamaBaseURL  string
	OllamaModel    string
	RequestTimeout time.Duration
	EnhanceTimeout time.Duration
	HealthCacheTTL time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			ProcessTopic:       getEnv("PROCESS_DOCUMENT_TOPIC_NAME", "PROCESS_DOCUMENT"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Pipeline: PipelineConfig{
			StuckThreshold: getEnvAsDuration("PIPELINE_STUCK_THRESHOLD", 2*time.Hour),
			ReaperInterval: getEnvAsDuration("PIPELINE_REAPER_INTERVAL", 15*time.Minute),
			LogRetention:   getEnvAsInt("PIPELINE_LOG_RETENTION_DAYS", 30),
		},
		Knowledge: KnowledgeConfig{
			ActivationThreshold: getEnvAsFloat("KNOWLEDGE_ACTIVATION_THRESHOLD", 0.5),
			MinChunkSize:        getEnvAsInt("KNOWLEDGE_MIN_CHUNK_SIZE", 80),
			MaxKeywords:         getEnvAsInt("KNOWLEDGE_MAX_KEYWORDS", 10),
		},
		Search: SearchConfig{
			DefaultLimit: getEnvAsInt("SEARCH_DEFAULT_LIMIT", 5),
			MinRelevance: getEnvAsFloat("SEARCH_MIN_RELEVANCE", 0.1),
		},
		Ai: AIConfig{
			Provider:       getEnv("LLM_PROVIDER", "ollama"),
			OllamaBaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:    getEnv("LLM_MODEL", "llama3"),
			RequestTimeout: getEnvAsDuration("LLM_REQUEST_TIMEOUT", 30*time.Second),
			EnhanceTimeout: getEnvAsDuration("LLM_ENHANCE_TIMEOUT", 5*time.Second),
			HealthCacheTTL: getEnvAsDuration("LLM_HEALTH_CACHE_TTL", 30*time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
