package entity

// ClassLabel — диагностический класс из закрытого набора модели.
type ClassLabel string

const (
	LabelCOVID          ClassLabel = "COVID"
	LabelLungOpacity    ClassLabel = "Lung_Opacity"
	LabelNormal         ClassLabel = "Normal"
	LabelViralPneumonia ClassLabel = "Viral Pneumonia"
)

// ClassLabels возвращает классы в порядке выходов обученной модели.
// Порядок совпадает с индексами выходного слоя, менять нельзя.
func ClassLabels() []ClassLabel {
	return []ClassLabel{LabelCOVID, LabelLungOpacity, LabelNormal, LabelViralPneumonia}
}

// IsKnown сообщает, входит ли класс в закрытый набор модели.
func (l ClassLabel) IsKnown() bool {
	switch l {
	case LabelCOVID, LabelLungOpacity, LabelNormal, LabelViralPneumonia:
		return true
	}
	return false
}
