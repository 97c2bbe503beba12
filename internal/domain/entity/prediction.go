package entity

import "sort"

// Prediction хранит результат одного прогона классификатора.
type Prediction struct {
	Label        ClassLabel             // класс с максимальной вероятностью
	Confidence   float64                // вероятность этого класса, [0, 1]
	Distribution map[ClassLabel]float64 // полное распределение по классам
}

// LabelProbability — пара класс/вероятность для отображения распределения.
type LabelProbability struct {
	Label       ClassLabel
	Probability float64
}

// Ranked возвращает распределение по убыванию вероятности.
func (p *Prediction) Ranked() []LabelProbability {
	ranked := make([]LabelProbability, 0, len(p.Distribution))
	for label, prob := range p.Distribution {
		ranked = append(ranked, LabelProbability{Label: label, Probability: prob})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Probability == ranked[j].Probability {
			return ranked[i].Label < ranked[j].Label
		}
		return ranked[i].Probability > ranked[j].Probability
	})
	return ranked
}
