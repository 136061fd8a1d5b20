package utils

import (
	"errors"
	"strings"
	"time"
)

// ParseDate accepts the two formats browser clients actually send: full
// RFC 3339 timestamps and bare YYYY-MM-DD date-input values.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty date")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("invalid date: " + value)
}
