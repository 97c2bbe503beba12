package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateGuidance_CoversAllLabels(t *testing.T) {
	require.NoError(t, ValidateGuidance())
}

func TestGuidanceFor_UnknownLabelDefaultsToNormal(t *testing.T) {
	unknown := GuidanceFor(ClassLabel("Tuberculosis"))
	normal := GuidanceFor(LabelNormal)
	require.Equal(t, normal, unknown)
}
