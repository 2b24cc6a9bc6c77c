package validators

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// MaxTagNameLength is the longest tag name in characters
const MaxTagNameLength = 50

// ValidTagName reports whether name is a normalised tag: 1..50 characters,
// lower case, no commas, words separated by single spaces.
func ValidTagName(name string) bool {
	if name == "" || utf8.RuneCountInString(name) > MaxTagNameLength {
		return false
	}
	if strings.ContainsRune(name, ',') || strings.Contains(name, "  ") {
		return false
	}
	if strings.HasPrefix(name, " ") || strings.HasSuffix(name, " ") {
		return false
	}
	for _, r := range name {
		if unicode.IsUpper(r) || unicode.IsControl(r) {
			return false
		}
		if unicode.IsSpace(r) && r != ' ' {
			return false
		}
	}
	return true
}

// TagNameValidation applies ValidTagName to a string field.
func TagNameValidation(fl validator.FieldLevel) bool {
	return ValidTagName(fl.Field().String())
}

// PhoneValidation accepts digits with an optional leading plus sign.
func PhoneValidation(fl validator.FieldLevel) bool {
	phone := strings.TrimPrefix(fl.Field().String(), "+")
	if phone == "" {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
