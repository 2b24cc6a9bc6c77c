package comments

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Comment entity
type Comment struct {
	ID        uint      `validate:"-"`
	Text      string    `validate:"required,min=1,max=500"`
	UserID    uint      `validate:"required"`
	PostID    uint      `validate:"required"`
	CreatedAt time.Time `validate:"-"`
	UpdatedAt time.Time `validate:"-"`
}

// Validate for validating Comment struct
func (c *Comment) Validate() error {
	validate := validator.New()

	err := validate.Struct(c)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// Page bounds for comment listings
const (
	DefaultLimit = 10
	MaxLimit     = 500
)

// Page is a limit/offset window
type Page struct {
	Limit  int
	Offset int
}

// Validate checks the page bounds
func (p Page) Validate() error {
	if p.Limit < 1 || p.Limit > MaxLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidPage, MaxLimit)
	}
	if p.Offset < 0 {
		return fmt.Errorf("%w: offset must not be negative", ErrInvalidPage)
	}
	return nil
}
