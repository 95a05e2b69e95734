package dto

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValidationErrors(t *testing.T) {
	type registerInput struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
		Role     string `validate:"required,oneof=ADMIN USER"`
	}

	v := validator.New()
	err := v.Struct(registerInput{Email: "not-an-email", Password: "short", Role: "ROOT"})
	require.Error(t, err)

	details := FormatValidationErrors(err)
	require.Len(t, details, 3)

	byField := map[string]string{}
	for _, d := range details {
		byField[d.Field] = d.Message
	}
	assert.Equal(t, "Must be a valid email address", byField["email"])
	assert.Equal(t, "Must be at least 8", byField["password"])
	assert.Equal(t, "Must be one of: ADMIN, USER", byField["role"])
}

func TestFormatValidationErrors_NonValidatorError(t *testing.T) {
	details := FormatValidationErrors(errors.New("unexpected EOF"))
	require.Len(t, details, 1)
	assert.Equal(t, "Invalid request body", details[0].Message)
}
