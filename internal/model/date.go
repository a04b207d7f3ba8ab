package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the calendar-date layout used by the snapshot document
const DateFormat = "2006-01-02"

// Date is the calendar timestamp of a ledger transaction.
// It reads either YYYY-MM-DD (midnight UTC) or a full RFC 3339 instant.
type Date struct {
	time.Time
}

// NewDate returns the Date at midnight UTC of the given day
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses YYYY-MM-DD or RFC 3339
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(DateFormat, s); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD or RFC 3339", s)
	}
	return Date{t}, nil
}

// IsCalendarDay reports whether d sits exactly on a UTC midnight
func (d Date) IsCalendarDay() bool {
	u := d.UTC()
	return u.Hour() == 0 && u.Minute() == 0 && u.Second() == 0 && u.Nanosecond() == 0
}

func (d Date) String() string {
	if d.IsCalendarDay() {
		return d.UTC().Format(DateFormat)
	}
	return d.Format(time.RFC3339)
}

// Within reports whether d falls in [start, end], bounds included
func (d Date) Within(start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON reads null and "" as the zero Date (no date given)
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Open bounds of a report window
var (
	WindowStart = time.Time{}
	WindowEnd   = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
)

// ParseWindow reads the bounds of an inclusive report window. An empty bound
// is open; an end written as YYYY-MM-DD covers that whole day.
func ParseWindow(start, end string) (time.Time, time.Time, error) {
	from, to := WindowStart, WindowEnd

	if start != "" {
		d, err := ParseDate(start)
		if err != nil {
			return from, to, err
		}
		from = d.Time
	}
	if end != "" {
		d, err := ParseDate(end)
		if err != nil {
			return from, to, err
		}
		to = d.Time
		if _, err := time.Parse(DateFormat, end); err == nil {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
	}
	return from, to, nil
}
