package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPatientContext_BlockNotProvided(t *testing.T) {
	require.Equal(t, "PATIENT INFORMATION: Not provided", PatientContext(nil).Block())

	// Анкета из одних пустых значений неотличима от отсутствующей
	allEmpty := PatientContext{
		{Name: "Age", Value: ""},
		{Name: "Gender", Value: "  "},
	}
	require.Equal(t, "PATIENT INFORMATION: Not provided", allEmpty.Block())
}

func TestPatientContext_BlockSkipsEmptyFields(t *testing.T) {
	patient := PatientContext{
		{Name: "Age", Value: "34"},
		{Name: "Gender", Value: ""},
	}

	block := patient.Block()
	require.Contains(t, block, "- Age: 34")
	require.NotContains(t, block, "Gender")
}

func TestPatientContext_BlockPreservesOrder(t *testing.T) {
	patient := PatientContext{
		{Name: "Patient ID", Value: "12345"},
		{Name: "Age", Value: "34"},
		{Name: "Clinical History", Value: "cough"},
	}

	require.Equal(t, "PATIENT INFORMATION:\n- Patient ID: 12345\n- Age: 34\n- Clinical History: cough", patient.Block())
}

func TestPatientContext_IsEmpty(t *testing.T) {
	require.True(t, PatientContext(nil).IsEmpty())
	require.True(t, PatientContext{{Name: "Age", Value: ""}}.IsEmpty())
	require.False(t, PatientContext{{Name: "Age", Value: "34"}}.IsEmpty())
}

func TestParsePatientContext(t *testing.T) {
	patient := ParsePatientContext("Age: 34\nGender: M\nпросто строка\n: без имени\nHistory:")

	require.Equal(t, PatientContext{
		{Name: "Age", Value: "34"},
		{Name: "Gender", Value: "M"},
		{Name: "History", Value: ""},
	}, patient)
}
