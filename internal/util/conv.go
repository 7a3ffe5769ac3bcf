package util

import (
	"fmt"
	"time"
)

// timestampLayouts are the accepted shapes for client-supplied timestamps.
// A bare date means midnight UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseTimestamp parses a client-supplied timestamp string. The empty string
// yields a nil time, not an error.
func ParseTimestamp(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w %q, expected RFC 3339 or YYYY-MM-DD", ErrInvalidTimestamp, value)
}
