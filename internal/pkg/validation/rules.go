package validation

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Validation errors
var (
	ErrEmptyEmail      = errors.New("email is required")
	ErrInvalidEmail    = errors.New("email is not valid")
	ErrForeignDomain   = errors.New("email must belong to the university domain")
	ErrEmptyValue      = errors.New("value is required")
	ErrValueTooShort   = errors.New("value is too short")
	ErrValueTooLong    = errors.New("value is too long")
	ErrPatternMismatch = errors.New("value has an invalid format")
)

// Validation rule patterns
var (
	// EmailLocalPattern matches the part before '@'
	EmailLocalPattern = `^[a-z0-9._%+\-]+$`

	// Name validation min/max length
	NameMinLength = 1
	NameMaxLength = 100

	// DescriptionMaxLength bounds free-text skill descriptions
	DescriptionMaxLength = 500
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	EmailLocal *regexp.Regexp
}{
	EmailLocal: regexp.MustCompile(EmailLocalPattern),
}

var lower = cases.Lower(language.Und)

// NormalizeEmail trims and lowercases raw and appends domain when raw has no '@'.
// An address on a different domain is rejected.
func NormalizeEmail(raw, domain string) (string, error) {
	email := lower.String(strings.TrimSpace(raw))
	if email == "" {
		return "", ErrEmptyEmail
	}
	domain = lower.String(strings.TrimSpace(domain))

	local, host, found := strings.Cut(email, "@")
	if !found {
		host = domain
	}
	if local == "" || !CompiledPatterns.EmailLocal.MatchString(local) {
		return "", ErrInvalidEmail
	}
	if host != domain {
		return "", ErrForeignDomain
	}
	return local + "@" + host, nil
}

// NormalizeDescription trims surrounding whitespace. Inner whitespace is kept:
// descriptions are matched on LOWER(description) only.
func NormalizeDescription(raw string) string {
	return strings.TrimSpace(raw)
}

// StringValidation describes the constraints of a single string field
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Check returns the first violated constraint, or nil. Lengths count runes.
func (v *StringValidation) Check() error {
	if v.Value == "" {
		if v.Required {
			return ErrEmptyValue
		}
		return nil
	}

	n := utf8.RuneCountInString(v.Value)
	if v.MinLen > 0 && n < v.MinLen {
		return ErrValueTooShort
	}
	if v.MaxLen > 0 && n > v.MaxLen {
		return ErrValueTooLong
	}
	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return ErrPatternMismatch
	}
	return nil
}

// Validate reports whether every constraint holds
func (v *StringValidation) Validate() bool {
	return v.Check() == nil
}
