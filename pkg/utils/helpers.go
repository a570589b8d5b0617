package utils

import (
	"math"
	"strconv"
	"strings"
)

// MetersPerSecondToKmh converts a wind speed from m/s to km/h.
func MetersPerSecondToKmh(ms float64) float64 {
	return ms * 3.6
}

// ParseNumber parses a provider numeric value that may carry surrounding spaces.
func ParseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

// ClampInt limits a value between min and max
func ClampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// RoundTo rounds a float to specified decimal places
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
