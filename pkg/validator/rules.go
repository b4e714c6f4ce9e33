package validator

import (
	"net/mail"
	"strings"
)

// Required checks that value is non-empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: FieldError{Field: field, Message: "is required"},
	}
}

// ValidEmail checks that value is a plausible email address: it must parse
// per RFC 5322, contain no embedded whitespace, and have a dotted domain with
// non-empty labels.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsEmail(value) },
		Error: FieldError{Field: field, Message: "must be a valid email address"},
	}
}

// IsEmail reports whether value is a syntactically valid address for typical
// web use. Total function; never panics.
func IsEmail(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" || strings.ContainsAny(value, " \t\n") {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	// Domain must be dotted with non-empty labels; bare hostnames pass
	// net/mail but are useless as recipient addresses.
	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
