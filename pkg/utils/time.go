package utils

import "time"

// FormatRFC3339Nano renders a timestamp at nanosecond precision
func FormatRFC3339Nano(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseRFC3339Nano parses a nanosecond-precision timestamp
func ParseRFC3339Nano(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
