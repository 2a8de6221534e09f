package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type registerInput struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestValidationMessage_JoinsAllFieldErrors(t *testing.T) {
	v := validator.New()
	err := v.Struct(registerInput{Name: "A", Email: "nope", Password: "123"})

	msg := ValidationMessage(err)

	assert.Equal(t, "Name must be at least 2 characters, Invalid email address, Password must be at least 6 characters", msg)
}

func TestValidationMessage_Fallback(t *testing.T) {
	assert.Equal(t, "Invalid request body", ValidationMessage(errors.New("EOF")))
}
