package model

import "time"

// TimestampLayout is the ISO-8601 form timestamps are stored in: UTC with
// millisecond precision, e.g. 2024-03-09T18:30:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// DateLayout is the calendar date form used in plan keys.
const DateLayout = "2006-01-02"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp reads a stored timestamp. Full RFC 3339 timestamps and bare
// calendar dates are accepted; anything else reports ok=false.
func ParseTimestamp(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
