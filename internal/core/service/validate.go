package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/learnstack/demo-console/internal/core/domain"
)

var validate = validator.New()

// check runs struct validation and converts the first failure into a
// domain.ValidationError with a human-readable message. Inputs that fail
// here never reach the network.
func check(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		return &domain.ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldError(fe),
		}
	}
	return err
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", field, strings.ToLower(fe.Param()))
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// messageFor maps a dispatcher error to the message shown to the user:
// the server's own message for rejections, a retry hint for transport
// failures, and the caller's fallback otherwise.
func messageFor(err error, fallback string) string {
	if errors.Is(err, domain.ErrNetwork) {
		return "Network error. Please try again."
	}
	var re *domain.RequestError
	if errors.As(err, &re) && re.Message != "" && re.Message != "request failed" {
		return re.Message
	}
	return fallback
}
