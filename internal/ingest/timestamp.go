package ingest

import (
	"strings"
	"time"
)

// Fractional seconds are accepted by time.Parse even when the layout omits them.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"02/01/2006 15:04:05",
}

// ParseTimestamp splits a raw "date time" field and parses it as UTC.
func ParseTimestamp(raw string) (date, clock string, at time.Time, ok bool) {
	parts := strings.Fields(raw)
	if len(parts) < 2 {
		return "", "", time.Time{}, false
	}

	date, clock = parts[0], parts[1]
	joined := date + " " + clock
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, joined); err == nil {
			return date, clock, t, true
		}
	}
	return "", "", time.Time{}, false
}
