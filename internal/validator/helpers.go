package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

var (
	RgxEmail      = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)
	RgxPhone      = regexp.MustCompile(`^\d{9,10}$`)
	RgxNationalID = regexp.MustCompile(`^\d{10}$`)
)

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

func MaxRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) <= n
}

func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}

func PermittedValue[T comparable](value T, permittedValues ...T) bool {
	return slices.Contains(permittedValues, value)
}

// InRange reports whether min <= value <= max.
func InRange(value, min, max float64) bool {
	return value >= min && value <= max
}

func IsEmail(value string) bool {
	return Matches(value, RgxEmail)
}

// IsPhone accepts 9 or 10 digits, nothing else.
func IsPhone(value string) bool {
	return Matches(value, RgxPhone)
}

func IsNationalIDFormat(value string) bool {
	return Matches(value, RgxNationalID)
}
