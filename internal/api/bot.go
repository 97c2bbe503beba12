package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"xray-bot/internal/container"
	"xray-bot/internal/domain/entity"
	"xray-bot/internal/domain/port"
	"xray-bot/internal/infrastructure/vision"
)

const (
	msgStart = `👋 Привет! Я бот для анализа рентгеновских снимков грудной клетки.

📸 Отправьте снимок, и я классифицирую его и подготовлю текст заключения.

📋 Команды:
/check — начать новый анализ
/pdf — скачать последний отчёт в PDF
/help — справка
/cancel — отменить текущую операцию

⚠️ Система предназначена только для учебных целей. Диагноз ставит только врач.`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте /check и заполните анкету пациента (или пропустите её)
2️⃣ Отправьте рентгеновский снимок грудной клетки
3️⃣ Получите классификацию и текст заключения
4️⃣ Команда /pdf соберёт отчёт в PDF

💡 Рекомендации:
• Снимок должен быть чётким, без обрезки лёгочных полей
• Подходят форматы PNG и JPEG

📋 Команды:
/check — начать анализ
/pdf — скачать отчёт
/cancel — отменить операцию

⚠️ Система предназначена только для учебных целей. Диагноз ставит только врач.`

	msgPatientInfo = `📝 Введите данные пациента, по одному полю на строку, в формате "Поле: значение". Например:

Patient ID: 12345
Age: 34
Gender: M
Clinical History: cough, fever

Или отправьте /skip, чтобы пропустить анкету.`

	msgAwaitingPhoto   = "📸 Отправьте рентгеновский снимок грудной клетки."
	msgCancelled       = "❌ Операция отменена. Отправьте /check для нового анализа."
	msgSendPhoto       = "📸 Пожалуйста, отправьте снимок или начните с команды /check."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Анализирую снимок..."
	msgProcessingError = "⚠️ Не удалось обработать снимок. Попробуйте отправить другой файл."
	msgModelMissing    = "⚠️ Модель классификации недоступна. Анализ временно не выполняется."
	msgNoRecord        = "ℹ️ Пока нет готового анализа. Отправьте /check и снимок."
	msgPDFError        = "⚠️ Не удалось собрать PDF-отчёт."
)

// Bot представляет Telegram-бота
type Bot struct {
	api      *tgbotapi.BotAPI
	services *container.Container
}

// NewBot создаёт нового бота
func NewBot(token string, services *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:      api,
		services: services,
	}, nil
}

// Run запускает основной цикл обработки сообщений
func (b *Bot) Run() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	ctx := context.Background()

	for update := range updates {
		if update.Message == nil {
			continue
		}

		b.handleMessage(ctx, update.Message)
	}

	return nil
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.services.UserService.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Printf("Error getting user: %v", err)
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg)
		return
	}

	if msg.Document != nil {
		b.handleDocument(ctx, msg)
		return
	}

	// Текстовое сообщение: в режиме анкеты — это данные пациента
	if user.State == entity.StateAwaitingPatientInfo {
		b.handlePatientInfo(ctx, msg)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	switch msg.Command() {
	case "start":
		b.services.UserService.Cancel(ctx, msg.From.ID, msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "check":
		if _, err := b.services.AnalysisService.BeginCheck(ctx, msg.From.ID, msg.Chat.ID); err != nil {
			log.Printf("Error beginning check: %v", err)
			return
		}
		b.sendMessage(msg.Chat.ID, msgPatientInfo)

	case "skip":
		if user.State != entity.StateAwaitingPatientInfo {
			b.sendMessage(msg.Chat.ID, msgUnknownCommand)
			return
		}
		if _, err := b.services.AnalysisService.SkipPatientInfo(ctx, msg.From.ID, msg.Chat.ID); err != nil {
			log.Printf("Error skipping patient info: %v", err)
			return
		}
		b.sendMessage(msg.Chat.ID, msgAwaitingPhoto)

	case "pdf":
		b.handlePDF(msg)

	case "cancel":
		b.services.UserService.Cancel(ctx, msg.From.ID, msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handlePatientInfo принимает анкету пациента текстом
func (b *Bot) handlePatientInfo(ctx context.Context, msg *tgbotapi.Message) {
	_, patient, err := b.services.AnalysisService.AcceptPatientInfo(ctx, msg.From.ID, msg.Chat.ID, msg.Text)
	if err != nil {
		log.Printf("Error accepting patient info: %v", err)
		return
	}

	b.sendMessage(msg.Chat.ID, fmt.Sprintf("✅ Принято полей анкеты: %d.\n\n%s", len(patient), msgAwaitingPhoto))
}

// handlePhoto обрабатывает входящий снимок
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	// Получаем файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(photo.FileID)
	if err != nil {
		log.Printf("Error downloading photo: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	b.analyze(ctx, msg, imageData)
}

// handleDocument обрабатывает снимок, присланный файлом
func (b *Bot) handleDocument(ctx context.Context, msg *tgbotapi.Message) {
	imageData, err := b.downloadFile(msg.Document.FileID)
	if err != nil {
		log.Printf("Error downloading document: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	b.analyze(ctx, msg, imageData)
}

// analyze запускает конвейер анализа и отправляет результат пользователю
func (b *Bot) analyze(ctx context.Context, msg *tgbotapi.Message, imageData []byte) {
	b.services.UserService.SetState(ctx, msg.From.ID, msg.Chat.ID, entity.StateProcessing)
	b.sendMessage(msg.Chat.ID, msgProcessing)

	defer b.services.UserService.Cancel(ctx, msg.From.ID, msg.Chat.ID)

	info, err := vision.DecodeInfo(imageData)
	if err != nil {
		log.Printf("Error decoding image: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	validation := vision.Validate(info)
	if !validation.Valid {
		b.sendMessage(msg.Chat.ID, "⚠️ "+validation.Message)
		return
	}
	if validation.Message != "" {
		b.sendMessage(msg.Chat.ID, "ℹ️ "+validation.Message)
	}

	record, err := b.services.AnalysisService.Analyze(ctx, msg.From.ID, imageData)
	if err != nil {
		log.Printf("Error analyzing image: %v", err)
		if errors.Is(err, port.ErrClassifierUnavailable) {
			b.sendMessage(msg.Chat.ID, msgModelMissing)
			return
		}
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	b.sendMessage(msg.Chat.ID, formatResult(record))
	b.sendMessage(msg.Chat.ID, record.Report.Text+"\n\n📄 /pdf — скачать отчёт в PDF")
}

// handlePDF собирает и отправляет PDF-отчёт по последнему анализу
func (b *Bot) handlePDF(msg *tgbotapi.Message) {
	record, ok := b.services.AnalysisService.Record(msg.From.ID)
	if !ok {
		b.sendMessage(msg.Chat.ID, msgNoRecord)
		return
	}

	data, err := b.services.Assembler.Assemble(record)
	if err != nil {
		log.Printf("Error assembling pdf: %v", err)
		b.sendMessage(msg.Chat.ID, msgPDFError)
		return
	}

	name := fmt.Sprintf("medical_report_%s.pdf", time.Now().Format("20060102_150405"))
	doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{Name: name, Bytes: data})
	if _, err := b.api.Send(doc); err != nil {
		log.Printf("Error sending pdf: %v", err)
		b.sendMessage(msg.Chat.ID, msgPDFError)
	}
}

// formatResult готовит сообщение с расшифровкой прогноза
func formatResult(record *entity.AnalysisRecord) string {
	prediction := record.Prediction
	interp := entity.Interpret(prediction.Label, prediction.Confidence)

	var sb strings.Builder
	sb.WriteString("🔍 Результат анализа\n\n")
	sb.WriteString(fmt.Sprintf("%s %s\n", interp.Icon, interp.Description))
	sb.WriteString(fmt.Sprintf("Класс: %s\n", prediction.Label))
	sb.WriteString(fmt.Sprintf("Уверенность: %.1f%% (%s)\n", prediction.Confidence*100, interp.ConfidenceTier))
	sb.WriteString(fmt.Sprintf("Срочность: %s\n", interp.Urgency))

	sb.WriteString("\nРаспределение по классам:\n")
	for _, lp := range prediction.Ranked() {
		sb.WriteString(fmt.Sprintf("• %s: %.1f%%\n", lp.Label, lp.Probability*100))
	}

	return sb.String()
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
