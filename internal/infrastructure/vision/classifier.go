//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"

	"gocv.io/x/gocv"

	"xray-bot/internal/domain/entity"
)

// Размер входа модели: снимок приводится к квадрату 224x224.
const inputSize = 224

// GoCVClassifier прогоняет снимки через ONNX-модель средствами OpenCV DNN.
type GoCVClassifier struct {
	net    gocv.Net
	labels []entity.ClassLabel
}

// NewGoCVClassifier загружает модель из файла.
func NewGoCVClassifier(modelPath string) (*GoCVClassifier, error) {
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("model file is not found at %s: %w", modelPath, err)
	}

	net := gocv.ReadNetFromONNX(modelPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load model from %s", modelPath)
	}

	return &GoCVClassifier{
		net:    net,
		labels: entity.ClassLabels(),
	}, nil
}

// Classify декодирует снимок, готовит нормализованный тензор и возвращает прогноз.
func (c *GoCVClassifier) Classify(ctx context.Context, imageData []byte) (*entity.Prediction, error) {
	_ = ctx
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("empty image")
	}

	// Масштаб 1/255 приводит пиксели к [0, 1], swapRB даёт порядок каналов RGB.
	blob := gocv.BlobFromImage(mat, 1.0/255.0, image.Pt(inputSize, inputSize),
		gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	c.net.SetInput(blob, "")

	out := c.net.Forward("")
	defer out.Close()

	if out.Total() < len(c.labels) {
		return nil, fmt.Errorf("unexpected model output size: %d", out.Total())
	}

	distribution := make(map[entity.ClassLabel]float64, len(c.labels))
	best := 0
	bestProb := float64(out.GetFloatAt(0, 0))
	for i, label := range c.labels {
		prob := float64(out.GetFloatAt(0, i))
		distribution[label] = prob
		if prob > bestProb {
			best = i
			bestProb = prob
		}
	}

	return &entity.Prediction{
		Label:        c.labels[best],
		Confidence:   bestProb,
		Distribution: distribution,
	}, nil
}

// Close освобождает ресурсы модели.
func (c *GoCVClassifier) Close() error {
	return c.net.Close()
}
