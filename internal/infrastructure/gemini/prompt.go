package gemini

import (
	"fmt"
	"time"

	"xray-bot/internal/domain/entity"
)

// buildPrompt собирает структурированный промпт для модели.
// Модель оформляет результат анализа ИИ, а не ставит диагноз сама —
// это проговаривается в тексте явно.
func buildPrompt(label entity.ClassLabel, confidence float64, patient entity.PatientContext, now time.Time) string {
	guidance := entity.GuidanceFor(label)

	return fmt.Sprintf(`You are an expert assistant for a radiologist, skilled at structuring AI-driven analysis into a professional report format.

An AI image analysis model has processed a chest X-ray and provided the following preliminary result:

%s

AI ANALYSIS RESULTS:
- Predicted Condition: %s
- AI Confidence Level: %.1f%%
- Analysis Date: %s

Based on the predicted condition '%s', please draft a radiology report using the following guidance and structure. You are to format the information professionally, not to make a diagnosis.

REPORT STRUCTURE TO FOLLOW:

CHEST X-RAY INTERPRETATION REPORT

CLINICAL INDICATION: Evaluation of chest for potential abnormalities.

TECHNIQUE: Standard chest radiography.

FINDINGS:
[Using the guidance below, describe the typical radiological findings for '%s'.]
Guidance for Findings: %s

IMPRESSION:
[Using the guidance below, write a concise summary for '%s'.]
Guidance for Impression: %s

RECOMMENDATIONS:
[Using the guidance below, provide a numbered list of appropriate recommendations for '%s'.]
Guidance for Recommendations: %s

DISCLAIMER: This report was generated with the assistance of an AI model and should be reviewed and validated by a qualified radiologist before being used for clinical decision-making.`,
		patient.Block(),
		label,
		confidence*100,
		now.Format("2006-01-02 15:04:05"),
		label,
		label, guidance.Findings,
		label, guidance.Impression,
		label, guidance.Recommendations,
	)
}
