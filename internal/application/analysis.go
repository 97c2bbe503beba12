package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"xray-bot/internal/domain/entity"
	"xray-bot/internal/domain/port"
)

// AnalysisService управляет полным конвейером анализа снимка:
// анкета пациента, классификация, заключение, хранение результата.
type AnalysisService struct {
	users      *UserService
	classifier port.Classifier
	reports    *ReportService
	pending    map[int64]entity.PatientContext
	records    map[int64]*entity.AnalysisRecord
	mu         sync.RWMutex
}

// NewAnalysisService создаёт сервис анализа снимков.
func NewAnalysisService(users *UserService, classifier port.Classifier, reports *ReportService) *AnalysisService {
	return &AnalysisService{
		users:      users,
		classifier: classifier,
		reports:    reports,
		pending:    make(map[int64]entity.PatientContext),
		records:    make(map[int64]*entity.AnalysisRecord),
	}
}

// BeginCheck начинает новый сценарий анализа с ввода анкеты.
func (s *AnalysisService) BeginCheck(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	s.mu.Lock()
	delete(s.pending, userID)
	s.mu.Unlock()

	return s.users.SetState(ctx, userID, chatID, entity.StateAwaitingPatientInfo)
}

// AcceptPatientInfo разбирает анкету из текста и переводит сценарий к снимку.
func (s *AnalysisService) AcceptPatientInfo(ctx context.Context, userID, chatID int64, text string) (*entity.User, entity.PatientContext, error) {
	patient := entity.ParsePatientContext(text)

	s.mu.Lock()
	s.pending[userID] = patient
	s.mu.Unlock()

	user, err := s.users.SetState(ctx, userID, chatID, entity.StateAwaitingPhoto)
	return user, patient, err
}

// SkipPatientInfo пропускает анкету и переводит сценарий к снимку.
func (s *AnalysisService) SkipPatientInfo(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	s.mu.Lock()
	delete(s.pending, userID)
	s.mu.Unlock()

	return s.users.SetState(ctx, userID, chatID, entity.StateAwaitingPhoto)
}

// Analyze прогоняет снимок через классификатор, генерирует заключение и
// сохраняет результат. Предыдущий результат пользователя перезаписывается.
func (s *AnalysisService) Analyze(ctx context.Context, userID int64, imageData []byte) (*entity.AnalysisRecord, error) {
	if s.classifier == nil {
		return nil, port.ErrClassifierUnavailable
	}

	prediction, err := s.classifier.Classify(ctx, imageData)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	patient := s.pending[userID]
	s.mu.RUnlock()

	rep, err := s.reports.Generate(ctx, prediction.Label, prediction.Confidence, patient)
	if err != nil {
		return nil, err
	}

	record := &entity.AnalysisRecord{
		ID:         uuid.NewString(),
		Image:      imageData,
		Prediction: prediction,
		Patient:    patient,
		Report:     rep,
		AnalyzedAt: time.Now(),
	}

	s.mu.Lock()
	s.records[userID] = record
	s.mu.Unlock()

	return record, nil
}

// Record возвращает последний результат анализа пользователя.
func (s *AnalysisService) Record(userID int64) (*entity.AnalysisRecord, bool) {
	s.mu.RLock()
	record, ok := s.records[userID]
	s.mu.RUnlock()
	return record, ok
}
