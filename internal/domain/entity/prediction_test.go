package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrediction_Ranked(t *testing.T) {
	p := &Prediction{
		Label:      LabelNormal,
		Confidence: 0.7,
		Distribution: map[ClassLabel]float64{
			LabelCOVID:          0.1,
			LabelLungOpacity:    0.15,
			LabelNormal:         0.7,
			LabelViralPneumonia: 0.05,
		},
	}

	ranked := p.Ranked()
	require.Len(t, ranked, 4)
	require.Equal(t, LabelNormal, ranked[0].Label)
	require.Equal(t, LabelLungOpacity, ranked[1].Label)
	require.Equal(t, LabelCOVID, ranked[2].Label)
	require.Equal(t, LabelViralPneumonia, ranked[3].Label)
}

func TestClassLabels_ModelOutputOrder(t *testing.T) {
	// Порядок должен совпадать с индексами выходного слоя модели
	require.Equal(t, []ClassLabel{LabelCOVID, LabelLungOpacity, LabelNormal, LabelViralPneumonia}, ClassLabels())
}

func TestClassLabel_IsKnown(t *testing.T) {
	require.True(t, LabelCOVID.IsKnown())
	require.False(t, ClassLabel("Tuberculosis").IsKnown())
}
