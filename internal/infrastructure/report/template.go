package report

import (
	"context"
	"fmt"
	"time"

	"xray-bot/internal/domain/entity"
	"xray-bot/internal/domain/port"
)

// TemplateSource генерирует заключение по фиксированным локальным шаблонам.
// Полностью покрывает закрытый набор классов и не может завершиться ошибкой:
// это последняя линия после отказа удалённой генерации.
type TemplateSource struct{}

// NewTemplateSource создаёт шаблонный источник заключений.
func NewTemplateSource() *TemplateSource {
	return &TemplateSource{}
}

// Generate подставляет уверенность, анкету и время в шаблон класса.
// Для нераспознанного класса возвращается диагностическая строка с меткой.
func (s *TemplateSource) Generate(ctx context.Context, label entity.ClassLabel, confidence float64, patient entity.PatientContext) (string, error) {
	_ = ctx

	tmpl, ok := templates[label]
	if !ok {
		return fmt.Sprintf("Report generation error for condition: %s", label), nil
	}

	return fmt.Sprintf(tmpl,
		patient.Block(),
		confidence*100,
		time.Now().Format("2006-01-02 15:04:05"),
	), nil
}

// Шаблоны: %s — блок анкеты, %.1f%% — уверенность, %s — время генерации.
var templates = map[entity.ClassLabel]string{
	entity.LabelCOVID: `CHEST X-RAY INTERPRETATION REPORT

%s

CLINICAL INDICATION: Evaluation for suspected COVID-19 pneumonia

TECHNIQUE: Standard chest radiography

FINDINGS: The chest radiograph demonstrates findings consistent with COVID-19 pneumonia (AI confidence: %.1f%%). Bilateral ground-glass opacities are observed, predominantly in the peripheral and lower lobe distribution. The pattern is characteristic of viral pneumonia with COVID-19 features. The cardiac silhouette appears normal in size and contour. No pleural effusion or pneumothorax is identified. The mediastinal contours are unremarkable.

IMPRESSION: Radiographic findings highly suggestive of COVID-19 pneumonia with bilateral peripheral ground-glass opacities.

RECOMMENDATIONS:
1. RT-PCR testing for COVID-19 confirmation and clinical correlation
2. Patient isolation per institutional COVID-19 protocols
3. Follow-up chest imaging in 7-10 days or if clinical condition deteriorates
4. Consider chest CT for better characterization if symptoms worsen
5. Monitor oxygen saturation and respiratory status closely

Report generated: %s`,

	entity.LabelViralPneumonia: `CHEST X-RAY INTERPRETATION REPORT

%s

CLINICAL INDICATION: Evaluation for suspected viral pneumonia

TECHNIQUE: Standard chest radiography

FINDINGS: The chest radiograph shows findings consistent with viral pneumonia (AI confidence: %.1f%%). Bilateral interstitial infiltrates are observed with a diffuse pattern throughout both lung fields. The appearance suggests viral etiology rather than bacterial pneumonia. The cardiac silhouette is within normal limits. No significant pleural effusion is noted.

IMPRESSION: Findings consistent with viral pneumonia, characterized by bilateral interstitial infiltrates.

RECOMMENDATIONS:
1. Clinical correlation with symptoms and vital signs
2. Supportive care and symptomatic treatment as indicated
3. Follow-up chest radiograph in 7-10 days to assess progression
4. Consider viral studies if specific pathogen identification needed
5. Monitor for complications and respiratory deterioration

Report generated: %s`,

	entity.LabelLungOpacity: `CHEST X-RAY INTERPRETATION REPORT

%s

CLINICAL INDICATION: Evaluation of lung opacities

TECHNIQUE: Standard chest radiography

FINDINGS: The chest radiograph reveals lung opacities (AI confidence: %.1f%%). Areas of increased density are noted, suggesting possible infectious process, inflammatory changes, or fluid accumulation. The distribution and characteristics require clinical correlation for definitive diagnosis. The cardiac silhouette appears normal. Costophrenic angles are preserved.

IMPRESSION: Lung opacities present with differential diagnosis including pneumonia, pulmonary edema, or inflammatory process.

RECOMMENDATIONS:
1. Clinical correlation with patient symptoms, vital signs, and physical examination
2. Complete blood count and inflammatory markers (CRP, ESR, procalcitonin)
3. Consider chest CT for better characterization of opacities
4. Follow-up imaging in 48-72 hours to assess response to treatment
5. Appropriate antimicrobial therapy if infectious etiology suspected

Report generated: %s`,

	entity.LabelNormal: `CHEST X-RAY INTERPRETATION REPORT

%s

CLINICAL INDICATION: Routine chest evaluation

TECHNIQUE: Standard chest radiography

FINDINGS: The chest radiograph appears normal (AI confidence: %.1f%%). The lungs are clear bilaterally with no evidence of consolidation, pneumothorax, or pleural effusion. The cardiac silhouette is normal in size and configuration. The mediastinal contours are unremarkable. The diaphragmatic contours are normal and the costophrenic angles are sharp.

IMPRESSION: Normal chest radiograph. No acute cardiopulmonary abnormalities detected.

RECOMMENDATIONS:
1. No immediate follow-up imaging required unless clinically indicated
2. Continue routine health maintenance and age-appropriate screening
3. Return for imaging if respiratory symptoms develop
4. Clinical follow-up as deemed appropriate by treating physician

Report generated: %s`,
}

// Проверка реализации интерфейса
var _ port.ReportSource = (*TemplateSource)(nil)
