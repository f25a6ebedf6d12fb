// Package dateutils provides common date operations used throughout the
// application.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date format constants
const (
	DateLayoutISO  = "2006-01-02"
	DateLayoutFull = "2006-01-02 15:04:05"
)

// CommonFormats is the list of formats tried when parsing dates from
// external payloads, most specific first.
var CommonFormats = []string{
	time.RFC3339,
	DateLayoutFull,
	DateLayoutISO,
}

// ParseDate attempts to parse a date string using the common formats.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// MonthLabel returns the calendar month name for a date, e.g. "January".
// Monthly aggregation groups debits under these labels.
func MonthLabel(date time.Time) string {
	return date.Month().String()
}
