package calendar

import (
	"time"

	"github.com/mazzegi/minical/date"
	"github.com/mazzegi/minical/slicesx"
)

// DaysInMonth returns the number of days of month in year. month is zero-based (0 = January);
// values outside [0,11] roll over into the adjacent years.
func DaysInMonth(year, month int) int {
	return monthOf(year, month).NumDays()
}

// FirstWeekday returns the weekday index (0 = Sunday .. 6 = Saturday) of the first day of month in year.
// month is zero-based (0 = January).
func FirstWeekday(year, month int) int {
	return int(monthOf(year, month).FirstWeekday())
}

func monthOf(year, month int) date.YearMonth {
	return date.MakeYearMonth(year, time.Month(month+1))
}

// Cell is one cell of the day grid. The zero Cell is an empty placeholder.
type Cell struct {
	Day      int  `diff:"day"`
	Selected bool `diff:"selected"`
}

func EmptyCell() Cell {
	return Cell{}
}

func DayCell(n int) Cell {
	return Cell{Day: n}
}

func (c Cell) IsEmpty() bool {
	return c.Day == 0
}

// Grid lays out ym as leading empty cells followed by one cell per day.
// The cell whose number equals selectedDay is marked selected; pass 0 to select none.
func Grid(ym date.YearMonth, selectedDay int) []Cell {
	lead := int(ym.FirstWeekday())
	n := ym.NumDays()
	cells := slicesx.Repeat(EmptyCell(), lead)
	for i := 1; i <= n; i++ {
		c := DayCell(i)
		c.Selected = i == selectedDay
		cells = append(cells, c)
	}
	return cells
}
