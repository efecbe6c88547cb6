// Package types implements special types for the finance dashboard.
package types

import (
	"fmt"
	"strings"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// LabelLayout is the layout used for human readable month labels, e.g. "Mar 2024".
const LabelLayout = "Jan 2006"

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Label returns the month formatted as "Jan 2006".
func (m Month) Label() string {
	return time.Time(m).Format(LabelLayout)
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the month in YYYY-MM format.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Both "YYYY-MM" and "YYYY-MM-DD" are accepted, the day is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	// Full dates and RFC3339 timestamps, only the calendar date is used
	if len(value) >= len(time.DateOnly) {
		parsed, err := ParseDateToMonth(value[:len(time.DateOnly)])
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}

	parsed, err := ParseMonth(value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MonthOf returns the Month in which a time occurs.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseDateToMonth parses a string in RFC3339 full-date format and returns the Month value it represents.
func ParseDateToMonth(s string) (Month, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == time.Time(m).Year() && t.Month() == time.Time(m).Month()
}

// Compare returns -1 if m is before n, +1 if m is after n and 0 if they are equal.
func (m Month) Compare(n Month) int {
	return time.Time(m).Compare(time.Time(n))
}

// LastMonths returns the n months ending with and including m, oldest first.
func (m Month) LastMonths(n int) []Month {
	if n <= 0 {
		return nil
	}

	months := make([]Month, n)
	for i := 0; i < n; i++ {
		months[i] = m.AddDate(0, i-n+1)
	}
	return months
}

// YearMonths returns all twelve months of a year, January first.
func YearMonths(year int) []Month {
	months := make([]Month, 12)
	for i := range months {
		months[i] = NewMonth(year, time.Month(i+1))
	}
	return months
}
