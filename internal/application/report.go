package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"xray-bot/internal/domain/entity"
	"xray-bot/internal/domain/port"
)

// ReportService выбирает путь генерации заключения.
// Удалённый источник подключается на этапе сборки, если задан ключ API;
// шаблонный источник обязателен и закрывает любой отказ удалённого.
type ReportService struct {
	remote   port.ReportSource // nil, если удалённая генерация недоступна
	fallback port.ReportSource
}

// NewReportService создаёт сервис генерации заключений.
func NewReportService(remote, fallback port.ReportSource) *ReportService {
	return &ReportService{
		remote:   remote,
		fallback: fallback,
	}
}

// Generate пробует удалённую генерацию и при любой ошибке — в том числе
// пустом ответе — молча переключается на шаблон. Наружу ошибка уходит
// только если отказал и шаблонный путь, чего по построению не бывает
// для известных классов.
func (s *ReportService) Generate(ctx context.Context, label entity.ClassLabel, confidence float64, patient entity.PatientContext) (*entity.Report, error) {
	if s.remote != nil {
		text, err := s.remote.Generate(ctx, label, confidence, patient)
		if err == nil && strings.TrimSpace(text) != "" {
			return &entity.Report{Text: text, Source: entity.ReportSourceRemote}, nil
		}
		if err != nil {
			log.Printf("Remote report generation failed, falling back to template: %v", err)
		} else {
			log.Printf("Remote report generation returned empty text, falling back to template")
		}
	}

	text, err := s.fallback.Generate(ctx, label, confidence, patient)
	if err != nil {
		return nil, fmt.Errorf("fallback report generation: %w", err)
	}

	return &entity.Report{Text: text, Source: entity.ReportSourceFallback}, nil
}
