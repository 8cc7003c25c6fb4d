package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels shown next to inputs
var FieldLabels = map[string]string{
	"Name":    "Name",
	"Email":   "Email",
	"Type":    "Project Type",
	"Message": "Message",
	"Product": "Product",
}

// FieldErrors maps each failing struct field to one user-facing message.
type FieldErrors map[string]string

// Messages returns the messages sorted by the order of keys.
func (fe FieldErrors) Messages(keys ...string) []string {
	out := make([]string, 0, len(fe))
	for _, k := range keys {
		if msg, ok := fe[k]; ok {
			out = append(out, msg)
		}
	}
	return out
}

// Collect converts validator.ValidationErrors into FieldErrors. Other errors
// are reported under the empty key.
func Collect(err error) FieldErrors {
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return FieldErrors{"": err.Error()}
	}

	out := make(FieldErrors, len(validationErrors))
	for _, e := range validationErrors {
		if _, seen := out[e.Field()]; !seen {
			out[e.Field()] = formatSingleError(e)
		}
	}
	return out
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
	case "project_type":
		return fmt.Sprintf("%s must be one of the listed options", label)
	case "no_emoji":
		return fmt.Sprintf("%s must not contain emoji or symbols", label)
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
