package handler

import (
	"time"
)

// ParseDateTime accepts an ISO-8601 datetime with or without a zone offset.
func ParseDateTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}
