package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/smartcity/weatherlookup/internal/domain"
)

const (
	minCityNameLength = 2
	maxCityNameLength = 50
)

// Letters, spaces, hyphens, apostrophes and periods only.
var cityNamePattern = regexp.MustCompile(`^[A-Za-z\s\-'.]+$`)

// ValidateCityName checks a raw city name before any network call is made.
func ValidateCityName(raw string) domain.ValidationResult {
	city := strings.TrimSpace(raw)

	if city == "" {
		return invalid("Please enter a city name")
	}

	n := utf8.RuneCountInString(city)
	if n < minCityNameLength {
		return invalid("City name must be at least 2 characters long")
	}
	if n > maxCityNameLength {
		return invalid("City name is too long")
	}

	if !cityNamePattern.MatchString(city) {
		return invalid("City name contains invalid characters")
	}

	return domain.ValidationResult{Valid: true}
}

func invalid(msg string) domain.ValidationResult {
	return domain.ValidationResult{Valid: false, Message: msg}
}
