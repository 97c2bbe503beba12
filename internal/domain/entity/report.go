package entity

import "time"

// ReportSource — происхождение текста заключения.
type ReportSource string

const (
	ReportSourceRemote   ReportSource = "remote"   // удалённая языковая модель
	ReportSourceFallback ReportSource = "fallback" // локальный шаблон
)

// Report — готовое текстовое заключение.
type Report struct {
	Text   string
	Source ReportSource
}

// AnalysisRecord — итог одного анализа снимка.
// Живёт до следующего анализа того же пользователя, затем перезаписывается.
type AnalysisRecord struct {
	ID         string
	Image      []byte
	Prediction *Prediction
	Patient    PatientContext
	Report     *Report
	AnalyzedAt time.Time
}
