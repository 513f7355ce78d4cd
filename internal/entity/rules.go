package entity

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rules are pure: each call returns a fresh message slice and never touches
// entity state. A nil result means the value passed.

const (
	maxNameLength   = 255
	maxAuthorLength = 100

	minYear   = 1000
	maxYear   = 9999
	minRating = 1
	maxRating = 5
)

var latinRe = regexp.MustCompile(`^[A-Za-z_]+$`)

// RequiredText reports Required when s is blank.
func RequiredText(field, s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{Required.Format(field)}
	}
	return nil
}

// MaxLen reports MaxLength when s has more than limit characters.
func MaxLen(field, s string, limit int) []string {
	if utf8.RuneCountInString(s) > limit {
		return []string{MaxLength.Format(field, limit)}
	}
	return nil
}

// MinLen reports MinLength when s has fewer than limit characters.
func MinLen(field, s string, limit int) []string {
	if utf8.RuneCountInString(s) < limit {
		return []string{MinLength.Format(field, limit)}
	}
	return nil
}

// Latin reports OnlyLatin unless s consists solely of ASCII letters and '_'.
func Latin(field, s string) []string {
	if !latinRe.MatchString(s) {
		return []string{OnlyLatin.Format(field)}
	}
	return nil
}

// StrongPassword reports Password unless s mixes upper case, lower case and
// digits.
func StrongPassword(field, s string) []string {
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if upper && lower && digit {
		return nil
	}
	return []string{Password.Format(field)}
}

// boundedText is the common non-blank plus max-length pair.
func boundedText(field, s string, limit int) []string {
	return join(RequiredText(field, s), MaxLen(field, s, limit))
}

func join(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
