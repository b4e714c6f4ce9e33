package validator

import (
	"fmt"
	"strings"
)

// FieldError describes a single failed check.
type FieldError struct {
	Field   string
	Message string
}

// Errors is a collection of field errors. It implements error.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether the collection contains an error for the given field.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error FieldError
}

// Apply evaluates rules in order and returns all failures as Errors, or nil
// when every check passes.
func Apply(rules ...Rule) error {
	var errs Errors
	for _, r := range rules {
		if !r.Check() {
			errs = append(errs, r.Error)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
