package pdf

import (
	"bytes"
	"compress/zlib"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"xray-bot/internal/domain/entity"
)

// textLayer распаковывает потоки содержимого PDF (FlateDecode) и возвращает
// их конкатенацию. Сырые байты документа сжаты, поэтому проверять текст
// нужно по распакованному слою.
func textLayer(t *testing.T, data []byte) string {
	t.Helper()

	var sb strings.Builder
	rest := data
	for {
		i := bytes.Index(rest, []byte("stream"))
		if i < 0 {
			break
		}
		chunk := bytes.TrimLeft(rest[i+len("stream"):], "\r\n")
		end := bytes.Index(chunk, []byte("endstream"))
		if end < 0 {
			break
		}
		// Потоки без zlib (например, изображение) пропускаем
		if r, err := zlib.NewReader(bytes.NewReader(chunk[:end])); err == nil {
			if decoded, err := io.ReadAll(r); err == nil {
				sb.Write(decoded)
			}
			r.Close()
		}
		rest = chunk[end+len("endstream"):]
	}
	return sb.String()
}

func testRecord(t *testing.T, reportText string) *entity.AnalysisRecord {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 64, 64))))

	return &entity.AnalysisRecord{
		ID:    "test-report-id",
		Image: buf.Bytes(),
		Prediction: &entity.Prediction{
			Label:      entity.LabelNormal,
			Confidence: 0.95,
			Distribution: map[entity.ClassLabel]float64{
				entity.LabelNormal: 0.95,
			},
		},
		Report:     &entity.Report{Text: reportText, Source: entity.ReportSourceFallback},
		AnalyzedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAssemble_ProducesPDF(t *testing.T) {
	record := testRecord(t, "CHEST X-RAY INTERPRETATION REPORT\n\nFINDINGS: The lungs are clear.\n\nIMPRESSION: Normal chest radiograph.")
	record.Patient = entity.PatientContext{{Name: "Age", Value: "34"}}

	data, err := NewAssembler().Assemble(record)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestAssemble_NoPatientInfo(t *testing.T) {
	record := testRecord(t, "FINDINGS: normal.")

	data, err := NewAssembler().Assemble(record)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}

func TestAssemble_BoldMarkersConverted(t *testing.T) {
	record := testRecord(t, "**FINDINGS**\n\nThe report contains **bold** text inline.")

	data, err := NewAssembler().Assemble(record)
	require.NoError(t, err)

	layer := textLayer(t, data)
	// Контрольная проверка, что распаковка потоков работает
	require.Contains(t, layer, "MEDICAL IMAGE ANALYSIS REPORT")
	// Маркеры markdown не должны дойти до текстового слоя документа
	require.NotContains(t, layer, "**")
	require.Contains(t, layer, "FINDINGS")
	require.Contains(t, layer, "inline")
}

func TestAssemble_DisclaimerIsLast(t *testing.T) {
	record := testRecord(t, "FINDINGS: The lungs are clear.\n\nIMPRESSION: Normal chest radiograph.")

	data, err := NewAssembler().Assemble(record)
	require.NoError(t, err)

	layer := textLayer(t, data)
	idx := strings.Index(layer, "MEDICAL DISCLAIMER")
	require.GreaterOrEqual(t, idx, 0)
	require.Greater(t, idx, strings.LastIndex(layer, "IMPRESSION"))
	require.Greater(t, idx, strings.LastIndex(layer, "radiograph"))
}

func TestAssemble_CorruptImage(t *testing.T) {
	record := testRecord(t, "FINDINGS: normal.")
	record.Image = []byte("not an image")

	_, err := NewAssembler().Assemble(record)
	require.Error(t, err)
}

func TestScaleToFit_PreservesAspectRatio(t *testing.T) {
	w, h := ScaleToFit(400, 100, 200, 200)
	require.InDelta(t, 200.0, w, 0.001)
	require.InDelta(t, 50.0, h, 0.001)
}

func TestScaleToFit_TallImage(t *testing.T) {
	w, h := ScaleToFit(100, 400, 200, 200)
	require.InDelta(t, 50.0, w, 0.001)
	require.InDelta(t, 200.0, h, 0.001)
}

func TestBoldToHTML(t *testing.T) {
	require.Equal(t, "a <b>b</b> c", BoldToHTML("a **b** c"))
	require.Equal(t, "<b>x</b> and <b>y</b>", BoldToHTML("**x** and **y**"))
	// Непарный маркер остаётся как есть
	require.Equal(t, "broken ** marker", BoldToHTML("broken ** marker"))
	require.Equal(t, "plain", BoldToHTML("plain"))
}

func TestIsSectionHeader(t *testing.T) {
	require.True(t, isSectionHeader("FINDINGS:"))
	require.True(t, isSectionHeader("CHEST X-RAY INTERPRETATION REPORT"))
	require.False(t, isSectionHeader("Findings: lungs are clear"))
	require.False(t, isSectionHeader("12345"))
}
