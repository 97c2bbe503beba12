package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterpret_KnownLabels(t *testing.T) {
	interp := Interpret(LabelCOVID, 0.9)
	require.Equal(t, "COVID-19 pneumonia detected", interp.Description)
	require.Equal(t, "High", interp.Urgency)

	interp = Interpret(LabelNormal, 0.9)
	require.Equal(t, "No abnormalities detected", interp.Description)
	require.Equal(t, "Low", interp.Urgency)
}

func TestInterpret_UnknownLabel(t *testing.T) {
	interp := Interpret(ClassLabel("Tuberculosis"), 0.5)
	require.Equal(t, "Unknown condition", interp.Description)
	require.Equal(t, "Unknown", interp.Urgency)
	require.Equal(t, "Low", interp.ConfidenceTier)
}

func TestConfidenceTier_ExactBoundaries(t *testing.T) {
	// Границы строгие: ровно на пороге уровень ещё не повышается
	require.Equal(t, "Medium", ConfidenceTier(0.80))
	require.Equal(t, "High", ConfidenceTier(0.8000001))
	require.Equal(t, "Low", ConfidenceTier(0.60))
	require.Equal(t, "Medium", ConfidenceTier(0.6000001))
}

func TestConfidenceTier_OutOfRange(t *testing.T) {
	require.Equal(t, "Low", ConfidenceTier(-0.5))
	require.Equal(t, "High", ConfidenceTier(1.5))
}
