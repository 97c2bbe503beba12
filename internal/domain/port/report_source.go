package port

import (
	"context"

	"xray-bot/internal/domain/entity"
)

// ReportSource интерфейс источника текста заключения
type ReportSource interface {
	// Generate формирует текст заключения по прогнозу и анкете пациента
	Generate(ctx context.Context, label entity.ClassLabel, confidence float64, patient entity.PatientContext) (string, error)
}
