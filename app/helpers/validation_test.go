package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type demoRequest struct {
	Name      string `validate:"required"`
	Type      string `validate:"required,oneof=Individual Government Organization"`
	Email     string `validate:"omitempty,email"`
	Password  string `validate:"omitempty,min=8"`
	ExtraNote string
}

func TestValidateStruct(t *testing.T) {
	valid := demoRequest{Name: "City Hall", Type: "Government"}
	assert.NoError(t, ValidateStruct(valid))

	err := ValidateStruct(demoRequest{Type: "Government"})
	assert.ErrorContains(t, err, "Name is required")

	err = ValidateStruct(demoRequest{Name: "City Hall", Type: "NGO"})
	assert.ErrorContains(t, err, "Type must be one of")

	err = ValidateStruct(demoRequest{Name: "x", Type: "Individual", Email: "not-an-email"})
	assert.ErrorContains(t, err, "Email must be a valid email")

	err = ValidateStruct(demoRequest{Name: "x", Type: "Individual", Password: "short"})
	assert.ErrorContains(t, err, "Password must be at least 8 characters")

	// Several failures join into one message
	err = ValidateStruct(demoRequest{Email: "nope"})
	assert.ErrorContains(t, err, ";")
}
