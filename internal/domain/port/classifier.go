package port

import (
	"context"
	"errors"

	"xray-bot/internal/domain/entity"
)

// ErrClassifierUnavailable возвращается, когда модель не подключена:
// классификатор не сконфигурирован или сборка без поддержки OpenCV.
var ErrClassifierUnavailable = errors.New("classifier is unavailable")

// Classifier интерфейс классификатора снимков
type Classifier interface {
	// Classify прогоняет снимок через модель и возвращает прогноз
	Classify(ctx context.Context, imageData []byte) (*entity.Prediction, error)
}
