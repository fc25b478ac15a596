package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Documents DocumentsConfig
	Ai        AIConfig
	Chat      ChatConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
	AdminSecret        string
}

type DocumentsConfig struct {
	Path            string
	ChunkSize       int
	MaxRelevantDocs int
}

type AIConfig struct {
	OllamaBaseURL  string
	ModelName      string
	Temperature    float64
	TimeoutSeconds int
}

type ChatConfig struct {
	MaxHistory       int
	HistoryTTLHours  int
	MaxMessageLength int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379/0"),
			AdminSecret:        getEnv("ADMIN_SECRET", "your-secret-key-change-in-production"),
		},
		Documents: DocumentsConfig{
			Path:            getEnv("DOCUMENTS_PATH", "data/documents"),
			ChunkSize:       getEnvAsInt("CHUNK_SIZE", 1000),
			MaxRelevantDocs: getEnvAsInt("MAX_RELEVANT_DOCS", 5),
		},
		Ai: AIConfig{
			OllamaBaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			ModelName:      getEnv("MODEL_NAME", "llama3.2:1b"),
			Temperature:    getEnvAsFloat("TEMPERATURE", 0.1),
			TimeoutSeconds: getEnvAsInt("MODEL_TIMEOUT", 30),
		},
		Chat: ChatConfig{
			MaxHistory:       getEnvAsInt("MAX_CHAT_HISTORY", 50),
			HistoryTTLHours:  getEnvAsInt("CHAT_HISTORY_TTL_HOURS", 24),
			MaxMessageLength: getEnvAsInt("MAX_MESSAGE_LENGTH", 1000),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
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
