package domain

import (
	"fmt"
	"strings"
)

type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeSelect   FieldType = "select"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeEmail    FieldType = "email"
	FieldTypePhone    FieldType = "phone"
	FieldTypeNumber   FieldType = "number"
)

func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeSelect, FieldTypeCheckbox,
		FieldTypeEmail, FieldTypePhone, FieldTypeNumber:
		return true
	}
	return false
}

// FormField describes one custom field an event collects on registration.
type FormField struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"`
}

// ValidateFormFields checks a field schema as supplied on template or
// instance creation.
func ValidateFormFields(fields []FormField) error {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if strings.TrimSpace(f.Key) == "" {
			return fmt.Errorf("%w: form field key is required", ErrValidation)
		}
		if !f.Type.Valid() {
			return fmt.Errorf("%w: unknown form field type %q", ErrValidation, f.Type)
		}
		if _, ok := seen[f.Key]; ok {
			return fmt.Errorf("%w: duplicate form field key %q", ErrValidation, f.Key)
		}
		seen[f.Key] = struct{}{}
	}
	return nil
}

// ValidateFormData checks submitted values against the declared schema.
// Every required field must carry a non-empty value, except checkbox fields
// where an empty selection is valid. Keys outside the schema are rejected.
func ValidateFormData(fields []FormField, data map[string]any) error {
	byKey := make(map[string]FormField, len(fields))
	for _, f := range fields {
		byKey[f.Key] = f
	}

	for key := range data {
		if _, ok := byKey[key]; !ok {
			return fmt.Errorf("%w: unknown form field %q", ErrValidation, key)
		}
	}

	for _, f := range fields {
		value, present := data[f.Key]

		if f.Required && f.Type != FieldTypeCheckbox {
			if !present || emptyValue(value) {
				return fmt.Errorf("%w: field %q is required", ErrValidation, f.Key)
			}
		}

		if f.Type == FieldTypeSelect && present && !emptyValue(value) {
			if err := checkOption(f, value); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkOption(f FormField, value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: field %q expects a single option", ErrValidation, f.Key)
	}
	for _, opt := range f.Options {
		if opt == s {
			return nil
		}
	}
	return fmt.Errorf("%w: %q is not an option for field %q", ErrValidation, s, f.Key)
}

func emptyValue(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case []any:
		return len(x) == 0
	case []string:
		return len(x) == 0
	default:
		return false
	}
}
