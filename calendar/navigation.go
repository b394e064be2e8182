package calendar

import "github.com/mazzegi/minical/date"

// PrevMonth returns the first day of the month before d.
func PrevMonth(d date.Date) date.Date {
	return date.Make(d.Year(), d.Month()-1, 1)
}

// NextMonth returns the first day of the month after d.
func NextMonth(d date.Date) date.Date {
	return date.Make(d.Year(), d.Month()+1, 1)
}
