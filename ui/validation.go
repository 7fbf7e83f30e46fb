package ui

import (
	"fmt"
	"strconv"
)

// parseIntOrDefault attempts to parse a string as an integer.
// Returns the parsed value or defaultValue if parsing fails.
func parseIntOrDefault(s string, defaultValue int) int {
	if s == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return val
}

// parseMinutes parses a minutes field and validates it's within a sane
// range for a pomodoro session.
func parseMinutes(s string, fieldName string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%s cannot be empty", fieldName)
	}

	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid number", fieldName)
	}

	if val < 1 || val > 600 {
		return 0, fmt.Errorf("%s must be between 1 and 600 minutes", fieldName)
	}

	return val, nil
}
