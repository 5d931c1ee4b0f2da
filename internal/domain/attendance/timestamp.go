package attendance

import (
	"strings"
	"time"
)

// DateLayout is the locale-independent calendar-day key: zero-padded day and
// month, 4-digit year.
const DateLayout = "02/01/2006"

// ClockLayout is the 12-hour display format for times of day.
const ClockLayout = "3:04 PM"

// mobileDateTimeLayouts are the timestamp shapes the mobile clients have
// historically sent. Most are zone-naive; such values are taken at face value
// with no zone conversion.
var mobileDateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
}

// ParseMobileDateTime parses an ISO-like timestamp string to minute precision.
func ParseMobileDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range mobileDateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
