// Package date provides wall-clock calendar dates without a time-of-day.
// All constructors go through time.Date, so out-of-range components roll over
// (month 13 is January of the next year, day 0 is the last day of the previous month).
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

var loc = time.FixedZone("default", 0)

func Today() Date {
	return FromTime(time.Now())
}

// FromTime takes the wall-clock year, month and day of t in its own location.
func FromTime(t time.Time) Date {
	return Date{
		t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc),
	}
}

type Date struct {
	t time.Time
}

func Make(year int, month time.Month, day int) Date {
	return Date{
		t: time.Date(year, month, day, 0, 0, 0, 0, loc),
	}
}

const CanonicalDate = "2006-01-02"

var parseLayouts = []string{
	CanonicalDate,
	"2006-1-2",
	time.RFC3339Nano,
	"02.01.2006",
}

func Parse(s string) (Date, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if layout == time.RFC3339Nano {
				t = t.In(time.Local)
			}
			return FromTime(t), nil
		}
	}
	return Date{}, fmt.Errorf("cannot parse %q in any layout of %v", s, parseLayouts)
}

func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("parse %q as date: %v", s, err))
	}
	return d
}

func (d Date) CanonicalString() string {
	return d.t.Format(CanonicalDate)
}

func (d Date) String() string {
	return d.CanonicalString()
}

func (d Date) Year() int {
	return d.t.Year()
}

func (d Date) Month() time.Month {
	return d.t.Month()
}

func (d Date) Day() int {
	return d.t.Day()
}

func (d Date) WeekDay() time.Weekday {
	return d.t.Weekday()
}

func (d Date) YearMonth() YearMonth {
	return MakeYearMonth(d.Year(), d.Month())
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Before(od Date) bool {
	return d.t.Before(od.t)
}

func (d Date) AddMonths(months int) Date {
	return FromTime(d.t.AddDate(0, months, 0))
}

func (d Date) AddDays(days int) Date {
	return FromTime(d.t.AddDate(0, 0, days))
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.CanonicalString())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}
	dt, err := Parse(s)
	if err != nil {
		return fmt.Errorf("parse-date %q: %w", s, err)
	}
	*d = dt
	return nil
}
