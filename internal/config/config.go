package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	AdminAPIKey string
	JWTSecret   string
}

type AIConfig struct {
	APIKey   string // provider API key; completion calls fail without it
	Model    string // explicit model name; empty triggers auto-selection
	Provider string // provider identifier, "openrouter" for now
	BaseURL  string
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
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", "./data/support.db"),
		},
		Auth: AuthConfig{
			AdminAPIKey: getEnv("ADMIN_API_KEY", "admin-secret-key"),
			JWTSecret:   getEnv("JWT_SECRET", "change_this_secret"),
		},
		Ai: AIConfig{
			APIKey:   getEnv("AI_API_KEY", ""),
			Model:    getEnv("MODEL_NAME", ""),
			Provider: getEnv("MODEL_PROVIDER", "openrouter"),
			BaseURL:  getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
