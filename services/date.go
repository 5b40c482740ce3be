package services

import (
	"fmt"
	"time"
)

// DateLayout is the date format accepted on command lines and date inputs
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date as midnight in loc, or a full RFC 3339
// timestamp. A nil loc means UTC.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(DateLayout, dateStr, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", dateStr)
}
