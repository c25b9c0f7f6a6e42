package fieldparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reISODate     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	reSlashDate   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2})$`)
	reCompactDate = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})$`)
)

// centuryBase is the prefix applied to two-digit years. Derived from the
// current date so the rule survives a century rollover.
func centuryBase() int {
	return (time.Now().UTC().Year() / 100) * 100
}

// IsValidDate performs range checks only: month 1-12, day 1-31. It does not
// know days-per-month, so Feb 30 passes; downstream consumers tolerate that.
func IsValidDate(year, month, day int) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

func formatISO(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ParseISODate passes through an already ISO-formatted calendar date.
func ParseISODate(s string) (string, bool) {
	m := reISODate.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if !IsValidDate(year, month, day) {
		return "", false
	}
	return formatISO(year, month, day), true
}

// ParseSlashDate parses the slash-delimited two-digit-year form MM/DD/YY.
func ParseSlashDate(s string) (string, bool) {
	m := reSlashDate.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	yy, _ := strconv.Atoi(m[3])
	year := centuryBase() + yy
	if !IsValidDate(year, month, day) {
		return "", false
	}
	return formatISO(year, month, day), true
}

// ParseCompactDate parses the six-digit form MMDDYY used in posting labels.
func ParseCompactDate(s string) (string, bool) {
	m := reCompactDate.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	yy, _ := strconv.Atoi(m[3])
	year := centuryBase() + yy
	if !IsValidDate(year, month, day) {
		return "", false
	}
	return formatISO(year, month, day), true
}

// ParseAnyDate tries ISO, slash, then compact form in that order.
func ParseAnyDate(s string) (string, bool) {
	if iso, ok := ParseISODate(s); ok {
		return iso, true
	}
	if iso, ok := ParseSlashDate(s); ok {
		return iso, true
	}
	return ParseCompactDate(s)
}

// AddDaysUTC shifts an ISO calendar date by n days. Arithmetic happens at
// UTC midnight, so month/year boundaries and DST transitions cannot drift it.
func AddDaysUTC(iso string, days int) (string, error) {
	t, err := time.ParseInLocation("2006-01-02", iso, time.UTC)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", iso, err)
	}
	return t.AddDate(0, 0, days).Format("2006-01-02"), nil
}
