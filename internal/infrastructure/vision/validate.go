package vision

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	_ "image/jpeg"
	_ "image/png"
)

// ImageInfo — базовые сведения о загруженном снимке.
type ImageInfo struct {
	Width  int
	Height int
	Format string // "png" или "jpeg"
	Gray   bool   // снимок в оттенках серого
}

// ValidationResult — вердикт проверки пригодности снимка.
type ValidationResult struct {
	Valid   bool
	Message string
}

// DecodeInfo читает заголовок изображения без полного декодирования.
func DecodeInfo(imageData []byte) (*ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	gray := cfg.ColorModel == color.GrayModel || cfg.ColorModel == color.Gray16Model

	return &ImageInfo{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
		Gray:   gray,
	}, nil
}

// Validate проверяет снимок по эвристикам разрешения и пропорций.
// Чистая функция: возвращает вердикт и человекочитаемое пояснение.
func Validate(info *ImageInfo) ValidationResult {
	if info.Width < 100 || info.Height < 100 {
		return ValidationResult{
			Valid:   false,
			Message: "Image resolution too low. Please upload a higher quality image.",
		}
	}

	if info.Width < 224 && info.Height < 224 {
		return ValidationResult{
			Valid:   true,
			Message: "Image will be upscaled for analysis. Consider using higher resolution images for better results.",
		}
	}

	aspect := float64(info.Width) / float64(info.Height)
	if aspect < 0.5 || aspect > 2.0 {
		return ValidationResult{
			Valid:   true,
			Message: "Unusual aspect ratio detected. Ensure the image shows a complete chest X-ray.",
		}
	}

	if info.Gray {
		return ValidationResult{
			Valid:   true,
			Message: "Grayscale X-ray image detected - suitable for analysis.",
		}
	}

	return ValidationResult{
		Valid:   true,
		Message: "Color image detected - will be processed for analysis.",
	}
}
