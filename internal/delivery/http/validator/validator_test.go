package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"persona/internal/errors"
)

type signUpBody struct {
	Login    string `json:"login" validate:"required,min=3,max=15"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	err := v.Validate(&signUpBody{Login: "alice01", Password: "secretpw"})
	assert.NoError(t, err)
}

func TestValidate_ShortLogin(t *testing.T) {
	v := New()

	err := v.Validate(&signUpBody{Login: "ab", Password: "secretpw"})
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Fields, 1)

	message, ok := validationErr.Fields[0]["login"]
	require.True(t, ok, "failure must be keyed by the field name")
	assert.Contains(t, message, "between 3 and 15 characters")
	assert.Contains(t, message, "Actual value: ab")
}

func TestValidate_ShortPassword(t *testing.T) {
	v := New()

	err := v.Validate(&signUpBody{Login: "alice01", Password: "abc"})
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))

	message, ok := validationErr.Fields[0]["password"]
	require.True(t, ok)
	assert.Contains(t, message, "more than 6 characters")
}

func TestValidate_EmptyFields(t *testing.T) {
	v := New()

	err := v.Validate(&signUpBody{})
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Fields, 2)

	loginMessage := validationErr.Fields[0]["login"]
	assert.Contains(t, loginMessage, "must be not empty")
}
