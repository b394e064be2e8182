package date

import (
	"fmt"
	"time"
)

// YearMonth is a month of a particular year. It is kept as the first day of that month.
type YearMonth struct {
	d Date
}

func MakeYearMonth(year int, month time.Month) YearMonth {
	return YearMonth{d: Make(year, month, 1)}
}

func (ym YearMonth) Year() int {
	return ym.d.Year()
}

func (ym YearMonth) Month() time.Month {
	return ym.d.Month()
}

func (ym YearMonth) Previous() YearMonth {
	return ym.AddMonths(-1)
}

func (ym YearMonth) Next() YearMonth {
	return ym.AddMonths(1)
}

// AddMonths is safe to use on the first of a month; AddDate would otherwise normalize e.g. Jan 31 + 1 month into March.
func (ym YearMonth) AddMonths(n int) YearMonth {
	return YearMonth{d: ym.d.AddMonths(n)}
}

// First returns the first day of the month.
func (ym YearMonth) First() Date {
	return ym.d
}

// Day returns the n-th day of the month. n is normalized, so 0 is the last day of the previous month.
func (ym YearMonth) Day(n int) Date {
	return Make(ym.Year(), ym.Month(), n)
}

// NumDays returns the number of days of the month, i.e. the day-of-month of "day 0 of the next month".
func (ym YearMonth) NumDays() int {
	return Make(ym.Year(), ym.Month()+1, 0).Day()
}

// FirstWeekday returns the weekday of the first day of the month.
func (ym YearMonth) FirstWeekday() time.Weekday {
	return ym.d.WeekDay()
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%d-%02d", ym.Year(), ym.Month())
}
