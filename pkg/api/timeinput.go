package api

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmptyTime is returned by ParseInstant for an empty input.
var ErrEmptyTime = errors.New("time value is empty")

// localLayouts are the forms an HTML datetime-local input produces.
var localLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// ParseInstant converts a client supplied time into a UTC instant.
// RFC 3339 values carry their own offset; datetime-local values are read in loc.
func ParseInstant(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrEmptyTime
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}

	if loc == nil {
		loc = time.Local
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %q", value)
}

// FormatInstant renders t in loc as "2006/01/02 15:04", the list display form.
func FormatInstant(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("2006/01/02 15:04")
}
