package contact

import (
	"regexp"
	"strings"

	"github.com/sitewire/sitewire/internal/dom"
)

const (
	requiredMessage = "This field is required."
	emailMessage    = "Please enter a valid email address."
)

// emailPattern accepts local@domain.tld shapes: no whitespace, no second
// '@', and at least one dot in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validationError returns the message for an invalid field, or "" when it is
// valid. Required fields must be non-empty after trimming; email fields with
// a non-empty trimmed value must match the email pattern.
func validationError(field dom.Element) string {
	trimmed := strings.TrimSpace(field.Value())

	if _, required := field.Attr("required"); required && trimmed == "" {
		return requiredMessage
	}
	if fieldType(field) == "email" && trimmed != "" && !emailPattern.MatchString(trimmed) {
		return emailMessage
	}
	return ""
}
