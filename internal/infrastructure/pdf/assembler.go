package pdf

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"regexp"
	"strings"
	"unicode"

	_ "image/jpeg"
	_ "image/png"

	"github.com/jung-kurt/gofpdf"

	"xray-bot/internal/domain/entity"
	"xray-bot/internal/domain/port"
)

const (
	systemName = "AI Medical Imaging Analysis v1.0"

	pageWidth = 210.0 // A4, мм

	// Ограничивающий прямоугольник для снимка в документе, мм.
	maxImageWidth  = 120.0
	maxImageHeight = 120.0

	disclaimerText = "MEDICAL DISCLAIMER: This report is generated by an AI system for educational and research purposes only. " +
		"This analysis should not be used as the sole basis for medical diagnosis or treatment decisions. " +
		"Always consult with qualified healthcare professionals for proper medical evaluation and care."
)

// Assembler собирает итоговый PDF-отчёт по результатам анализа.
type Assembler struct{}

// NewAssembler создаёт сборщик документов.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble строит документ целиком: заголовок, сводная таблица, анкета,
// снимок, текст заключения и дисклеймер в конце. Любая ошибка по пути
// означает, что документ не возвращается вовсе.
func (a *Assembler) Assemble(record *entity.AnalysisRecord) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTopMargin(15)
	doc.AddPage()

	a.writeTitle(doc)

	a.writeTable(doc, [][2]string{
		{"Analysis Date:", record.AnalyzedAt.Format("2006-01-02 15:04:05")},
		{"Predicted Condition:", string(record.Prediction.Label)},
		{"AI Confidence:", fmt.Sprintf("%.1f%%", record.Prediction.Confidence*100)},
		{"Report ID:", record.ID},
		{"System:", systemName},
	})
	doc.Ln(8)

	if !record.Patient.IsEmpty() {
		a.writeHeader(doc, "PATIENT INFORMATION")
		rows := make([][2]string, 0, len(record.Patient))
		for _, f := range record.Patient {
			if strings.TrimSpace(f.Value) == "" {
				continue
			}
			rows = append(rows, [2]string{f.Name + ":", f.Value})
		}
		a.writeTable(doc, rows)
		doc.Ln(8)
	}

	if len(record.Image) > 0 {
		a.writeHeader(doc, "CHEST X-RAY IMAGE")
		if err := a.embedImage(doc, record.Image); err != nil {
			return nil, err
		}
		doc.Ln(8)
	}

	a.writeHeader(doc, "DETAILED MEDICAL REPORT")
	a.writeReportText(doc, record.Report.Text)

	a.writeDisclaimer(doc)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("assemble pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (a *Assembler) writeTitle(doc *gofpdf.Fpdf) {
	doc.SetFont("Helvetica", "B", 18)
	doc.SetTextColor(0, 0, 139)
	doc.CellFormat(0, 12, "MEDICAL IMAGE ANALYSIS REPORT", "", 1, "C", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.Ln(6)
}

func (a *Assembler) writeHeader(doc *gofpdf.Fpdf, title string) {
	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(0, 0, 139)
	doc.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.Ln(2)
}

func (a *Assembler) writeTable(doc *gofpdf.Fpdf, rows [][2]string) {
	const (
		keyWidth   = 55.0
		valueWidth = 95.0
		rowHeight  = 8.0
	)

	for _, row := range rows {
		doc.SetFont("Helvetica", "B", 10)
		doc.SetFillColor(211, 211, 211)
		doc.CellFormat(keyWidth, rowHeight, row[0], "1", 0, "L", true, 0, "")
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(valueWidth, rowHeight, row[1], "1", 1, "L", false, 0, "")
	}
}

// embedImage вписывает снимок в ограничивающий прямоугольник,
// сохраняя пропорции: один общий масштаб для обеих сторон.
func (a *Assembler) embedImage(doc *gofpdf.Fpdf, imageData []byte) error {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	var imageType string
	switch format {
	case "png":
		imageType = "PNG"
	case "jpeg":
		imageType = "JPG"
	default:
		return fmt.Errorf("unsupported image format: %s", format)
	}

	width, height := ScaleToFit(cfg.Width, cfg.Height, maxImageWidth, maxImageHeight)

	opts := gofpdf.ImageOptions{ImageType: imageType}
	doc.RegisterImageOptionsReader("xray", opts, bytes.NewReader(imageData))
	if doc.Err() {
		return fmt.Errorf("register image: %v", doc.Error())
	}

	x := (pageWidth - width) / 2
	doc.ImageOptions("xray", x, 0, width, height, true, opts, 0, "")
	if doc.Err() {
		return fmt.Errorf("place image: %v", doc.Error())
	}
	return nil
}

// writeReportText разбивает текст на абзацы по пустым строкам.
// Короткий абзац целиком в верхнем регистре считается заголовком раздела.
// Маркеры **text** конвертируются до проверки на заголовок: абзац вида
// **FINDINGS** после конвертации содержит строчные буквы тегов и уходит
// в обычный путь с жирным начертанием, а не в заголовок с литеральными
// звёздочками.
func (a *Assembler) writeReportText(doc *gofpdf.Fpdf, text string) {
	html := doc.HTMLBasicNew()

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		converted := BoldToHTML(para)

		if isSectionHeader(converted) {
			doc.SetFont("Helvetica", "B", 12)
			doc.SetTextColor(0, 0, 139)
			doc.MultiCell(0, 7, converted, "", "L", false)
			doc.SetTextColor(0, 0, 0)
			doc.Ln(2)
			continue
		}

		doc.SetFont("Helvetica", "", 10)
		html.Write(5, strings.ReplaceAll(converted, "\n", "<br>"))
		doc.Ln(7)
	}
}

func (a *Assembler) writeDisclaimer(doc *gofpdf.Fpdf) {
	doc.Ln(10)
	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(255, 0, 0)
	doc.MultiCell(0, 4, disclaimerText, "", "C", false)
	doc.SetTextColor(0, 0, 0)
}

// ScaleToFit считает размеры изображения внутри ограничивающего
// прямоугольника с сохранением пропорций.
func ScaleToFit(width, height int, maxWidth, maxHeight float64) (float64, float64) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	scale := math.Min(maxWidth/float64(width), maxHeight/float64(height))
	return float64(width) * scale, float64(height) * scale
}

var boldMarkers = regexp.MustCompile(`\*\*(.*?)\*\*`)

// BoldToHTML переводит markdown-выделение **текст** в <b>текст</b>.
// Непарные маркеры остаются как есть.
func BoldToHTML(text string) string {
	return boldMarkers.ReplaceAllString(text, "<b>$1</b>")
}

// isSectionHeader распознаёт заголовок раздела: короткая строка,
// все буквы в верхнем регистре, хотя бы одна буква.
func isSectionHeader(para string) bool {
	if len(para) >= 50 {
		return false
	}

	hasLetter := false
	for _, r := range para {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

// Проверка реализации интерфейса
var _ port.DocumentAssembler = (*Assembler)(nil)
