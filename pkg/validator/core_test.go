package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/otec/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "rut", Message: "RUT requerido"})
		errs.Add(validator.ValidationError{Field: "nombre", Message: "field is required"})

		assert.Equal(t, "validation failed: rut: RUT requerido; nombre: field is required", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "rut", Message: "first"},
		{Field: "email", Message: "bad"},
		{Field: "rut", Message: "second"},
	}

	assert.True(t, errs.Has("rut"))
	assert.False(t, errs.Has("nombre"))
	assert.Equal(t, []string{"first", "second"}, errs.Get("rut"))
	assert.Len(t, errs.GetErrors("email"), 1)
	assert.Equal(t, []string{"rut", "email"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
	assert.True(t, validator.ValidationErrors(nil).IsEmpty())
}

func TestValidationErrors_Translate(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "nombre", Message: "field is required", TranslationKey: "validation.required", TranslationValues: map[string]any{"field": "nombre"}},
		{Field: "x", Message: "untouched"},
		{Field: "y", Message: "unknown key kept", TranslationKey: "missing"},
	}

	out := errs.Translate(func(key string, values map[string]any) string {
		if key == "validation.required" {
			return fmt.Sprintf("%v es obligatorio", values["field"])
		}
		return ""
	})

	require.Len(t, out, 3)
	assert.Equal(t, "nombre es obligatorio", out[0].Message)
	assert.Equal(t, "untouched", out[1].Message)
	assert.Equal(t, "unknown key kept", out[2].Message)
	assert.Equal(t, "field is required", errs[0].Message, "original must not change")

	assert.Nil(t, validator.ValidationErrors(nil).Translate(func(string, map[string]any) string { return "x" }))
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("nombre", "Juan"),
			validator.ValidRUT("rut", "12.345.678-5"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure in order", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("nombre", " "),
			validator.ValidRUT("rut", "12.345.678-9"),
			validator.MaxLen("empresa", "ok", 10),
		)
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, "nombre", errs[0].Field)
		assert.Equal(t, "rut", errs[1].Field)
	})

	t.Run("wrapped errors are still extracted", func(t *testing.T) {
		err := fmt.Errorf("row 3: %w", validator.Apply(validator.Required("nombre", "")))
		assert.True(t, validator.IsValidationError(err))
		assert.Len(t, validator.ExtractValidationErrors(err), 1)
	})

	t.Run("non validation errors", func(t *testing.T) {
		assert.False(t, validator.IsValidationError(errors.New("boom")))
		assert.False(t, validator.IsValidationError(nil))
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
	})
}

func TestOptional(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.Optional("", validator.ValidEmail("email", ""))))
	assert.NoError(t, validator.Apply(validator.Optional("  ", validator.ValidEmail("email", "  "))))
	assert.NoError(t, validator.Apply(validator.Optional("a@otec.cl", validator.ValidEmail("email", "a@otec.cl"))))
	assert.Error(t, validator.Apply(validator.Optional("nope", validator.ValidEmail("email", "nope"))))
}
