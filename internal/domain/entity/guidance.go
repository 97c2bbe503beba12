package entity

import "fmt"

// Guidance — подсказки для генерации текста заключения по классу.
type Guidance struct {
	Findings        string
	Impression      string
	Recommendations string
}

var guidanceTable = map[ClassLabel]Guidance{
	LabelCOVID: {
		Findings: "Describe bilateral ground-glass opacities with peripheral and lower lobe distribution. " +
			"Mention the typical appearance of COVID-19 pneumonia. " +
			"Note any associated findings like air bronchograms or consolidation. " +
			"Comment on cardiac silhouette and pleural spaces.",
		Impression: "State findings consistent with COVID-19 pneumonia. " +
			"Mention the bilateral peripheral pattern typical of viral pneumonia.",
		Recommendations: "Include RT-PCR testing confirmation, isolation protocols, " +
			"clinical correlation with symptoms, follow-up imaging timeline, " +
			"and consideration of chest CT if clinically indicated.",
	},
	LabelViralPneumonia: {
		Findings: "Describe bilateral interstitial or mixed alveolar-interstitial infiltrates. " +
			"Note the diffuse distribution pattern typical of viral etiology. " +
			"Differentiate from bacterial pneumonia appearance. " +
			"Comment on any associated findings.",
		Impression: "State findings consistent with viral pneumonia. " +
			"Note the bilateral interstitial pattern.",
		Recommendations: "Include supportive care measures, symptom monitoring, " +
			"follow-up imaging schedule, clinical evaluation, " +
			"and consideration of antiviral therapy if specific virus identified.",
	},
	LabelLungOpacity: {
		Findings: "Describe the location, extent, and characteristics of the opacities. " +
			"Consider differential diagnosis including infection, inflammation, or fluid. " +
			"Note any associated findings like air bronchograms or volume loss. " +
			"Comment on distribution pattern.",
		Impression: "State presence of lung opacities with differential diagnosis. " +
			"Mention need for clinical correlation.",
		Recommendations: "Include clinical correlation with symptoms and vital signs, " +
			"laboratory studies (CBC, inflammatory markers), " +
			"consideration of chest CT for better characterization, " +
			"and appropriate follow-up imaging timeline.",
	},
	LabelNormal: {
		Findings: "Confirm clear lung fields bilaterally with no consolidation. " +
			"Note normal cardiac silhouette and mediastinal contours. " +
			"Comment on normal diaphragmatic contours and costophrenic angles. " +
			"State no acute abnormalities are present.",
		Impression: "State normal chest radiograph with no acute cardiopulmonary abnormalities.",
		Recommendations: "Include routine follow-up as clinically appropriate, " +
			"continued clinical monitoring if symptomatic, " +
			"no immediate imaging follow-up required, " +
			"and age-appropriate screening recommendations.",
	},
}

// GuidanceFor возвращает подсказки по классу.
// Для неизвестного класса намеренно используются подсказки Normal, чтобы
// генерация не падала на нераспознанной метке.
func GuidanceFor(label ClassLabel) Guidance {
	if g, ok := guidanceTable[label]; ok {
		return g
	}
	return guidanceTable[LabelNormal]
}

// ValidateGuidance проверяет на старте, что таблица подсказок покрывает
// весь закрытый набор классов и ни один блок не пуст.
func ValidateGuidance() error {
	for _, label := range ClassLabels() {
		g, ok := guidanceTable[label]
		if !ok {
			return fmt.Errorf("guidance table is missing label %q", label)
		}
		if g.Findings == "" || g.Impression == "" || g.Recommendations == "" {
			return fmt.Errorf("guidance for label %q has an empty section", label)
		}
	}
	return nil
}
