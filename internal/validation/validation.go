// Package validation holds the side-effect free checks applied before any
// record is persisted.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrValidation is wrapped by every error this package returns.
var ErrValidation = errors.New("validation error")

const (
	minPhoneDigits    = 10
	maxPhoneDigits    = 15
	minPasswordLength = 8
	minRating         = 1
	maxRating         = 5
	defaultRating     = 3
)

// Field identifies which input a FieldError refers to.
type Field string

const (
	FieldPhone    Field = "phone"
	FieldPassword Field = "password"
	FieldRating   Field = "rating"
)

// FieldError describes a single violated rule.
type FieldError struct {
	Field   Field
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error { return ErrValidation }

var phoneSeparators = strings.NewReplacer("-", "", "(", "", ")", "", "+", "")

// ValidatePhone reports whether s looks like a phone number once separators
// and whitespace are removed.
func ValidatePhone(s string) bool {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phoneSeparators.Replace(s))

	if len(cleaned) < minPhoneDigits || len(cleaned) > maxPhoneDigits {
		return false
	}
	for i := 0; i < len(cleaned); i++ {
		if cleaned[i] < '0' || cleaned[i] > '9' {
			return false
		}
	}
	return true
}

// PolicyResult is the outcome of a password policy check. Message carries the
// first violated rule when Valid is false.
type PolicyResult struct {
	Valid   bool
	Message string
}

// Err converts a failed result into a *FieldError.
func (r PolicyResult) Err() error {
	if r.Valid {
		return nil
	}
	return &FieldError{Field: FieldPassword, Message: r.Message}
}

const (
	msgPasswordTooShort    = "Password must be at least 8 characters long"
	msgPasswordNoUppercase = "Password must contain at least one uppercase letter"
	msgPasswordNoLowercase = "Password must contain at least one lowercase letter"
	msgPasswordNoDigit     = "Password must contain at least one number"
)

// CheckPasswordPolicy evaluates length, uppercase, lowercase and digit rules in
// that order and stops at the first failure.
func CheckPasswordPolicy(password string) PolicyResult {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return PolicyResult{Message: msgPasswordTooShort}
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		return PolicyResult{Message: msgPasswordNoUppercase}
	}
	if !strings.ContainsFunc(password, unicode.IsLower) {
		return PolicyResult{Message: msgPasswordNoLowercase}
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		return PolicyResult{Message: msgPasswordNoDigit}
	}
	return PolicyResult{Valid: true}
}

// PolicyRules lists the password requirements shown to the customer.
func PolicyRules() []string {
	return []string{
		"At least 8 characters long",
		"At least one uppercase letter (A-Z)",
		"At least one lowercase letter (a-z)",
		"At least one number (0-9)",
	}
}

// ValidateRating reports whether r is within the 1-5 star range.
func ValidateRating(r int) bool {
	return r >= minRating && r <= maxRating
}

// ResolveRating applies the default to an absent rating and range-checks a
// provided one.
func ResolveRating(r *int) (int, error) {
	if r == nil {
		return defaultRating, nil
	}
	if !ValidateRating(*r) {
		return 0, &FieldError{
			Field:   FieldRating,
			Message: fmt.Sprintf("rating must be between %d and %d, got %d", minRating, maxRating, *r),
		}
	}
	return *r, nil
}
