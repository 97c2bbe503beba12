//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"fmt"

	"xray-bot/internal/domain/entity"
	"xray-bot/internal/domain/port"
)

// GoCVClassifier — заглушка классификатора для сборки без OpenCV.
type GoCVClassifier struct{}

// NewGoCVClassifier создаёт классификатор-заглушку (без OpenCV).
func NewGoCVClassifier(modelPath string) (*GoCVClassifier, error) {
	_ = modelPath
	return &GoCVClassifier{}, nil
}

// Classify возвращает ошибку, если сборка без тега gocv.
func (c *GoCVClassifier) Classify(ctx context.Context, imageData []byte) (*entity.Prediction, error) {
	_ = ctx
	_ = imageData
	return nil, fmt.Errorf("%w: gocv build tag is not enabled", port.ErrClassifierUnavailable)
}

// Close ничего не освобождает в сборке без тега gocv.
func (c *GoCVClassifier) Close() error {
	return nil
}
