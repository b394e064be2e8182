package calendar

import (
	"fmt"
	"time"

	"github.com/mazzegi/minical/date"
	"github.com/mazzegi/minical/slicesx"
)

var MonthNames = [12]string{
	"一月",
	"二月",
	"三月",
	"四月",
	"五月",
	"六月",
	"七月",
	"八月",
	"九月",
	"十月",
	"十一月",
	"十二月",
}

// WeekdayLabels are the column labels, Sunday first.
var WeekdayLabels = [7]string{"日", "一", "二", "三", "四", "五", "六"}

func MonthName(m time.Month) string {
	return MonthNames[(int(m)-1+12)%12]
}

func Header(year int, month time.Month) string {
	return fmt.Sprintf("%d年%s", year, MonthName(month))
}

// View is everything needed to draw the calendar for one state.
type View struct {
	Year     int        `diff:"year"`
	Month    time.Month `diff:"month"`
	Header   string     `diff:"header"`
	Weekdays []string   `diff:"weekdays"`
	Cells    []Cell     `diff:"cells"`
	Revision uint64     `diff:"-"`
}

// MakeView derives the view for d: the month of d, with d's day selected.
func MakeView(d date.Date) View {
	ym := d.YearMonth()
	return View{
		Year:     ym.Year(),
		Month:    ym.Month(),
		Header:   Header(ym.Year(), ym.Month()),
		Weekdays: append([]string{}, WeekdayLabels[:]...),
		Cells:    Grid(ym, d.Day()),
	}
}

// Weeks splits the cells into rows of seven; the last row is padded with empty cells.
func (v View) Weeks() [][]Cell {
	cells := slicesx.PadRight(append([]Cell{}, v.Cells...), len(WeekdayLabels), EmptyCell())
	return slicesx.Chunks(cells, len(WeekdayLabels))
}

// Selected returns the selected day number, if any cell is selected.
func (v View) Selected() (int, bool) {
	for _, c := range v.Cells {
		if c.Selected {
			return c.Day, true
		}
	}
	return 0, false
}

// LeadingBlanks returns the number of empty cells before day 1.
func (v View) LeadingBlanks() int {
	n := 0
	for _, c := range v.Cells {
		if !c.IsEmpty() {
			break
		}
		n++
	}
	return n
}
