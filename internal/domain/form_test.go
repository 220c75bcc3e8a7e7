package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tourSchema = []FormField{
	{Key: "full_name", Label: "Full name", Type: FieldTypeText, Required: true},
	{Key: "diet", Label: "Dietary needs", Type: FieldTypeSelect, Options: []string{"none", "vegetarian", "halal"}},
	{Key: "interests", Label: "Interests", Type: FieldTypeCheckbox, Required: true},
	{Key: "notes", Label: "Notes", Type: FieldTypeTextarea},
}

func TestValidateFormData_OK(t *testing.T) {
	err := ValidateFormData(tourSchema, map[string]any{
		"full_name": "Aissatou Ba",
		"diet":      "halal",
		"interests": []any{"markets"},
	})

	assert.NoError(t, err)
}

func TestValidateFormData_MissingRequired(t *testing.T) {
	err := ValidateFormData(tourSchema, map[string]any{
		"diet": "none",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateFormData_BlankRequired(t *testing.T) {
	err := ValidateFormData(tourSchema, map[string]any{
		"full_name": "   ",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateFormData_EmptyCheckboxIsValid(t *testing.T) {
	err := ValidateFormData(tourSchema, map[string]any{
		"full_name": "Aissatou Ba",
		"interests": []any{},
	})

	assert.NoError(t, err)
}

func TestValidateFormData_UnknownKeyRejected(t *testing.T) {
	err := ValidateFormData(tourSchema, map[string]any{
		"full_name": "Aissatou Ba",
		"twitter":   "@a",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateFormData_SelectOutsideOptions(t *testing.T) {
	err := ValidateFormData(tourSchema, map[string]any{
		"full_name": "Aissatou Ba",
		"diet":      "pescatarian",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateFormFields_DuplicateKey(t *testing.T) {
	err := ValidateFormFields([]FormField{
		{Key: "name", Type: FieldTypeText},
		{Key: "name", Type: FieldTypeText},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateFormFields_UnknownType(t *testing.T) {
	err := ValidateFormFields([]FormField{{Key: "x", Type: FieldType("slider")}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}
