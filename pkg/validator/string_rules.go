package validator

import (
	"fmt"
	"strings"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{Field: field, Message: "field is required"},
	}
}

// RequiredVar is Required with the message used for environment variables.
func RequiredVar(name, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{Field: name, Message: fmt.Sprintf("%s is not set", name)},
	}
}

// NotContains validates that value does not contain substr.
func NotContains(field, value, substr string) Rule {
	return Rule{
		Check: func() bool {
			return !strings.Contains(value, substr)
		},
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must not contain %q", substr)},
	}
}

// MaxLen validates that value is at most max bytes long.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters long", max)},
	}
}
