package main

import (
	"log"

	"xray-bot/config"
	telegram "xray-bot/internal/api"
	"xray-bot/internal/container"
	"xray-bot/internal/domain/entity"
	"xray-bot/internal/domain/port"
	"xray-bot/internal/infrastructure/gemini"
	"xray-bot/internal/infrastructure/pdf"
	"xray-bot/internal/infrastructure/report"
	"xray-bot/internal/infrastructure/storage"
	"xray-bot/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	// Таблица подсказок должна покрывать весь набор классов
	if err := entity.ValidateGuidance(); err != nil {
		log.Fatalf("Invalid guidance table: %v", err)
	}

	// Классификатор: при недоступной модели анализ блокируется, бот живёт
	var classifier port.Classifier
	if c, err := vision.NewGoCVClassifier(cfg.ModelPath); err != nil {
		log.Printf("Classifier is unavailable, analysis will be blocked: %v", err)
	} else {
		classifier = c
	}

	// Удалённая генерация подключается только при наличии ключа API
	var remote port.ReportSource
	if cfg.GoogleAPIKey != "" {
		remote = gemini.NewClient(cfg.GoogleAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)
		log.Printf("Remote report generation enabled, model: %s", cfg.GeminiModel)
	} else {
		log.Println("GOOGLE_API_KEY is not set, reports will use local templates only")
	}

	userRepo := storage.NewMemoryUserRepository()

	appContainer := container.New(userRepo, classifier, remote, report.NewTemplateSource(), pdf.NewAssembler())

	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	log.Println("Bot is running...")
	if err := bot.Run(); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
