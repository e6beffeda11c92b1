package domain

import "time"

const (
	localDateTimeMinutes = "2006-01-02T15:04"
	localDateTimeSeconds = "2006-01-02T15:04:05"
	localDate            = "2006-01-02"
)

// FormatLocalDateTime renders t as an ISO-8601 local date-time without zone. Seconds are omitted
// when zero, and the fraction uses the shortest of 3, 6 or 9 digits that is exact.
func FormatLocalDateTime(t time.Time) string {
	nanos := t.Nanosecond()
	switch {
	case nanos == 0 && t.Second() == 0:
		return t.Format(localDateTimeMinutes)
	case nanos == 0:
		return t.Format(localDateTimeSeconds)
	case nanos%1_000_000 == 0:
		return t.Format(localDateTimeSeconds + ".000")
	case nanos%1_000 == 0:
		return t.Format(localDateTimeSeconds + ".000000")
	default:
		return t.Format(localDateTimeSeconds + ".000000000")
	}
}

// ParseLocalDateTime parses YYYY-MM-DDTHH:MM with optional seconds and fraction, as UTC.
func ParseLocalDateTime(value string) (time.Time, error) {
	if parsed, err := time.Parse(localDateTimeSeconds, value); err == nil {
		return parsed, nil
	}
	return time.Parse(localDateTimeMinutes, value)
}

// ParseLocalDate accepts a calendar date, or a local date-time of which only the date is kept.
func ParseLocalDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(localDate, value); err == nil {
		return parsed, nil
	}
	parsed, err := ParseLocalDateTime(value)
	if err != nil {
		return time.Time{}, err
	}
	year, month, day := parsed.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}
