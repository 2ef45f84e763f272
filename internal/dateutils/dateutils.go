// Package dateutils provides the date operations used throughout the engine:
// parsing transaction dates, framing months and weeks, and the legacy week
// number used by the anomaly detector.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date format constants used throughout the application.
const (
	DateLayoutISO     = "2006-01-02"
	DateLayoutSlashed = "02/01/2006"
	DateLayoutDashed  = "02-01-2006"
	MonthKeyLayout    = "2006-01"
)

// TransactionDateFormats is the ordered list of formats the ingestor accepts.
// The first matching format wins.
var TransactionDateFormats = []string{
	DateLayoutISO,
	DateLayoutSlashed,
	DateLayoutDashed,
}

// ParseTransactionDate attempts to parse a date string using the accepted
// transaction formats, returning the parsed time and the detected format.
func ParseTransactionDate(dateStr string) (time.Time, string, error) {
	dateStr = strings.TrimSpace(dateStr)

	for _, format := range TransactionDateFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// MonthKey returns the ISO month key (YYYY-MM) for a date.
func MonthKey(date time.Time) string {
	return date.Format(MonthKeyLayout)
}

// StartOfMonth returns the first day of the month for a given date.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// StartOfWeek returns the Monday beginning the week the date falls in,
// truncated to midnight.
func StartOfWeek(date time.Time) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -offset)
}

// DayDistance returns the absolute distance between two dates in whole days,
// ignoring the time-of-day component.
func DayDistance(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	d := int(a.Sub(b).Hours() / 24)
	if d < 0 {
		d = -d
	}
	return d
}

// LegacyWeekNumber computes the within-year week number as
// ceil((dayOfYear + weekdayOfJan1 + 1) / 7), with Sunday counted as weekday 0.
// The numbering is only comparable between dates of the same year.
func LegacyWeekNumber(date time.Time) int {
	jan1 := time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
	n := date.YearDay() + int(jan1.Weekday()) + 1
	return (n + 6) / 7
}
