package entitlement

import (
	"fmt"
	"time"
)

// the fixed daily allotment of free queries, used when no override is configured
const DefaultDailyFreeQuota = 10

// identifies which balance a granted query draws from
type Source string

const (
	SourceFree Source = "free"
	SourcePaid Source = "paid"
	SourceNone Source = "none"
)

// outcome of an allowance check
type Decision struct {
	Allowed bool
	Source  Source
}

// a civil calendar date, injected by the caller so day-rollover logic never
// reads a wall clock
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// returns the calendar date of t in t's location
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// returns the current UTC calendar date; the free-quota day is UTC-anchored
func Today() Date {
	return DateOf(time.Now().UTC())
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// ISO-8601 form, also the storage representation
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// parses a date in ISO-8601 form; the zero Date is returned for empty input
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}

	return DateOf(t), nil
}

// one user's entitlement record
type Entitlement struct {
	UserID        string
	FreeQuotaDate Date
	FreeRemaining int
	PaidBalance   int
}
