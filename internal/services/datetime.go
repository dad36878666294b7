package services

import (
	"fmt"
	"strings"
	"time"
)

// datetimeLayouts are the timestamp formats accepted from clients, tried in order.
var datetimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseDatetime parses an optional client timestamp into UTC. Nil or blank yields nil.
func parseDatetime(field string, value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	s := strings.TrimSpace(*value)
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s is not a valid datetime", ErrInvalidInput, field)
}
