package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	GoogleAPIKey  string // пустое значение — работаем только по шаблонам
	ModelPath     string
	GeminiModel   string
	GeminiTimeout time.Duration
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		GoogleAPIKey:  os.Getenv("GOOGLE_API_KEY"),
		ModelPath:     getEnv("MODEL_PATH", "models/chest_xray.onnx"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiTimeout: 15 * time.Second,
	}

	if raw := os.Getenv("GEMINI_TIMEOUT"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			cfg.GeminiTimeout = time.Duration(seconds) * time.Second
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
