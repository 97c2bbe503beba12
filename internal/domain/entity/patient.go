package entity

import "strings"

// PatientField — одно поле анкеты пациента.
type PatientField struct {
	Name  string
	Value string
}

// PatientContext — необязательные сведения о пациенте.
// Срез вместо map, потому что порядок ввода должен сохраняться в отчёте.
type PatientContext []PatientField

const patientNotProvided = "PATIENT INFORMATION: Not provided"

// IsEmpty сообщает, есть ли хотя бы одно заполненное поле.
// Пустая анкета и анкета из одних пустых значений не различаются.
func (c PatientContext) IsEmpty() bool {
	for _, f := range c {
		if strings.TrimSpace(f.Value) != "" {
			return false
		}
	}
	return true
}

// Block собирает текстовый блок для отчёта: по строке на заполненное поле,
// пустые поля пропускаются, порядок ввода сохраняется.
func (c PatientContext) Block() string {
	if c.IsEmpty() {
		return patientNotProvided
	}

	lines := []string{"PATIENT INFORMATION:"}
	for _, f := range c {
		if strings.TrimSpace(f.Value) == "" {
			continue
		}
		lines = append(lines, "- "+f.Name+": "+f.Value)
	}
	return strings.Join(lines, "\n")
}

// ParsePatientContext разбирает анкету из текста пользователя.
// Каждая строка в формате "Поле: значение", остальные строки игнорируются.
func ParsePatientContext(text string) PatientContext {
	var ctx PatientContext
	for _, line := range strings.Split(text, "\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		ctx = append(ctx, PatientField{Name: name, Value: strings.TrimSpace(value)})
	}
	return ctx
}
