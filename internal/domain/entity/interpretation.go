package entity

// Interpretation — краткая расшифровка прогноза для пользователя.
type Interpretation struct {
	Description    string // что обнаружено
	Urgency        string // срочность реакции
	Color          string // цвет индикатора
	Icon           string // значок для сообщений
	ConfidenceTier string // уровень уверенности: High / Medium / Low
}

var interpretations = map[ClassLabel]Interpretation{
	LabelCOVID: {
		Description: "COVID-19 pneumonia detected",
		Urgency:     "High",
		Color:       "red",
		Icon:        "🦠",
	},
	LabelViralPneumonia: {
		Description: "Viral pneumonia detected",
		Urgency:     "High",
		Color:       "orange",
		Icon:        "🫁",
	},
	LabelLungOpacity: {
		Description: "Lung opacities detected",
		Urgency:     "Medium",
		Color:       "yellow",
		Icon:        "⚠️",
	},
	LabelNormal: {
		Description: "No abnormalities detected",
		Urgency:     "Low",
		Color:       "green",
		Icon:        "✅",
	},
}

// Interpret сопоставляет прогнозу описание, срочность и уровень уверенности.
// Чистая функция без ошибок: неизвестный класс получает запись "Unknown",
// уверенность вне [0, 1] передаётся дальше без изменений.
func Interpret(label ClassLabel, confidence float64) Interpretation {
	interp, ok := interpretations[label]
	if !ok {
		interp = Interpretation{
			Description: "Unknown condition",
			Urgency:     "Unknown",
			Color:       "gray",
			Icon:        "❓",
		}
	}
	interp.ConfidenceTier = ConfidenceTier(confidence)
	return interp
}

// ConfidenceTier переводит уверенность в фиксированную градацию.
// Границы строгие: ровно 0.8 — это ещё Medium, ровно 0.6 — ещё Low.
func ConfidenceTier(confidence float64) string {
	switch {
	case confidence > 0.8:
		return "High"
	case confidence > 0.6:
		return "Medium"
	default:
		return "Low"
	}
}
