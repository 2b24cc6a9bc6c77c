//go:build unit
// +build unit

package validators

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tagged struct {
	Name  string `validate:"tagname"`
	Phone string `validate:"omitempty,phone"`
}

func newValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("tagname", TagNameValidation))
	require.NoError(t, v.RegisterValidation("phone", PhoneValidation))
	return v
}

func TestTagNameValidation(t *testing.T) {
	v := newValidator(t)

	valid := []string{
		"sea",
		"summer-2024",
		"café",
		"new york",
		strings.Repeat("я", MaxTagNameLength),
		strings.Repeat("x", MaxTagNameLength),
	}
	for _, name := range valid {
		assert.NoError(t, v.Struct(tagged{Name: name}), name)
	}

	invalid := []string{
		"",
		"Sea",
		"Київ",
		"a,b",
		"tab\tbed",
		"two  spaces",
		" leading",
		"trailing ",
		strings.Repeat("я", MaxTagNameLength+1),
		strings.Repeat("x", MaxTagNameLength+1),
	}
	for _, name := range invalid {
		assert.Error(t, v.Struct(tagged{Name: name}), name)
	}
}

func TestPhoneValidation(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(tagged{Name: "x", Phone: "+380501234567"}))
	assert.NoError(t, v.Struct(tagged{Name: "x", Phone: "0501234567"}))
	assert.Error(t, v.Struct(tagged{Name: "x", Phone: "+"}))
	assert.Error(t, v.Struct(tagged{Name: "x", Phone: "050-123"}))
}
