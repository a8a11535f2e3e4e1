// Package types implements special types for the club ledger.
package types

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Interval is the billing interval of a membership fee.
//
// swagger:enum Interval
type Interval string

const (
	Monthly   Interval = "MONTHLY"
	Quarterly Interval = "QUARTERLY"
	Yearly    Interval = "YEARLY"
)

var (
	ErrIntervalInvalid  = errors.New("the billing interval must be one of MONTHLY, QUARTERLY, YEARLY")
	ErrPeriodKeyInvalid = errors.New("the period key must be in the format YYYY, YYYY-Qn or YYYY-MM")
)

// Valid reports whether the interval is a known one.
func (i Interval) Valid() bool {
	return i == Monthly || i == Quarterly || i == Yearly
}

// periods returns the number of periods per year.
func (i Interval) periods() int {
	switch i {
	case Monthly:
		return 12
	case Quarterly:
		return 4
	default:
		return 1
	}
}

// months returns the length of one period in months.
func (i Interval) months() int {
	return 12 / i.periods()
}

var (
	yearPattern    = regexp.MustCompile(`^([0-9]{4})$`)
	quarterPattern = regexp.MustCompile(`^([0-9]{4})-Q([1-4])$`)
	monthPattern   = regexp.MustCompile(`^([0-9]{4})-(0[1-9]|1[0-2])$`)
)

// Period is a single billing period, e.g. the second quarter of 2024.
//
// Index is 1-based: the month for MONTHLY, the quarter for QUARTERLY
// and always 1 for YEARLY.
type Period struct {
	Interval Interval
	Year     int
	Index    int
}

// PeriodOf returns the period of the interval that contains t.
func PeriodOf(interval Interval, t time.Time) Period {
	t = t.In(time.UTC)
	month := int(t.Month())

	return Period{
		Interval: interval,
		Year:     t.Year(),
		Index:    (month-1)/interval.months() + 1,
	}
}

// ParsePeriodKey parses a period key. The interval is derived
// from the format of the key.
func ParsePeriodKey(key string) (Period, error) {
	if m := yearPattern.FindStringSubmatch(key); m != nil {
		year, _ := strconv.Atoi(m[1])
		return Period{Interval: Yearly, Year: year, Index: 1}, nil
	}

	if m := quarterPattern.FindStringSubmatch(key); m != nil {
		year, _ := strconv.Atoi(m[1])
		quarter, _ := strconv.Atoi(m[2])
		return Period{Interval: Quarterly, Year: year, Index: quarter}, nil
	}

	if m := monthPattern.FindStringSubmatch(key); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return Period{Interval: Monthly, Year: year, Index: month}, nil
	}

	return Period{}, fmt.Errorf("%w, got '%s'", ErrPeriodKeyInvalid, key)
}

// ParsePeriodKeyFor parses a period key and verifies that it
// is in the format of the given interval.
func ParsePeriodKeyFor(interval Interval, key string) (Period, error) {
	if !interval.Valid() {
		return Period{}, fmt.Errorf("%w, got '%s'", ErrIntervalInvalid, interval)
	}

	p, err := ParsePeriodKey(key)
	if err != nil {
		return Period{}, err
	}

	if p.Interval != interval {
		return Period{}, fmt.Errorf("%w: '%s' is not a %s period key", ErrPeriodKeyInvalid, key, interval)
	}

	return p, nil
}

// Key returns the canonical period key.
func (p Period) Key() string {
	switch p.Interval {
	case Monthly:
		return fmt.Sprintf("%04d-%02d", p.Year, p.Index)
	case Quarterly:
		return fmt.Sprintf("%04d-Q%d", p.Year, p.Index)
	default:
		return fmt.Sprintf("%04d", p.Year)
	}
}

// String returns the period key.
func (p Period) String() string {
	return p.Key()
}

// IsZero reports if the period is the zero value.
func (p Period) IsZero() bool {
	return p == Period{}
}

// Start returns the first instant of the period.
func (p Period) Start() time.Time {
	month := time.Month((p.Index-1)*p.Interval.months() + 1)
	return time.Date(p.Year, month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the first instant after the period.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, p.Interval.months(), 0)
}

// Next returns the following period.
func (p Period) Next() Period {
	if p.Index >= p.Interval.periods() {
		return Period{Interval: p.Interval, Year: p.Year + 1, Index: 1}
	}
	return Period{Interval: p.Interval, Year: p.Year, Index: p.Index + 1}
}

// Before reports whether p starts before q.
func (p Period) Before(q Period) bool {
	return p.Start().Before(q.Start())
}

// After reports whether p starts after q.
func (p Period) After(q Period) bool {
	return p.Start().After(q.Start())
}

// PeriodsBetween returns all periods from a to b, both inclusive.
// It returns an empty slice if b is before a or the intervals differ.
func PeriodsBetween(a, b Period) []Period {
	periods := make([]Period, 0)
	if a.Interval != b.Interval {
		return periods
	}

	for p := a; !p.After(b); p = p.Next() {
		periods = append(periods, p)
	}

	return periods
}
