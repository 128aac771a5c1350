package engine

import (
	"wedform/internal/metadata"
)

// ValidateField checks a single field value: the Required flag first, then
// the field's rule if a value is present. The caller supplied the field
// directly, so conditionals are not consulted here. Never panics.
func ValidateField(field metadata.Field, value any) (result FieldResult) {
	result = FieldResult{Valid: true}
	defer func() {
		if r := recover(); r != nil {
			result = FieldResult{Valid: false, Error: "Validation failed"}
		}
	}()

	if field.Required && isEmpty(value) {
		return FieldResult{Valid: false, Error: requiredMessage(field)}
	}
	if value == nil {
		return result
	}
	if detail := EvaluateRule(field.ID, field.Rule, value); detail != nil {
		return FieldResult{Valid: false, Error: detail.Message}
	}
	return result
}

// ValidateSection checks every active field in the section against the
// payload, collecting all failures so a UI can flag every invalid field at
// once. An inactive section validates clean.
func ValidateSection(section metadata.Section, payload map[string]any) Result {
	result := newResult()

	if !EvaluateCondition(section.Conditional, payload) {
		return result
	}

	for _, f := range section.Fields {
		if !EvaluateCondition(f.Conditional, payload) {
			continue
		}
		fr := ValidateField(f, payload[f.ID])
		if !fr.Valid {
			result.addError(f.ID, fr.Error)
		}
	}
	return result
}

// ValidateForm checks the full payload against the form's aggregate schema.
func ValidateForm(form *Form, payload map[string]any) Result {
	return form.Schema.Validate(payload)
}
