// Package render draws calendar views as plain text and reports what changed between two views.
package render

import (
	"strconv"
	"strings"

	"github.com/mazzegi/minical/calendar"
	"golang.org/x/text/width"
)

const (
	cellWidth = 4
	prevCtl   = "<"
	nextCtl   = ">"
)

// DisplayWidth returns the number of terminal columns s occupies; east asian wide runes take two.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func padLeft(s string, w int) string {
	return strings.Repeat(" ", max(0, w-DisplayWidth(s))) + s
}

func center(s string, w int) string {
	gap := max(0, w-DisplayWidth(s))
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// Cell renders a single grid cell: blanks for empty cells, the day number otherwise,
// bracketed when selected.
func Cell(c calendar.Cell) string {
	switch {
	case c.IsEmpty():
		return strings.Repeat(" ", cellWidth)
	case c.Selected:
		return padLeft("["+strconv.Itoa(c.Day)+"]", cellWidth)
	default:
		return padLeft(strconv.Itoa(c.Day)+" ", cellWidth)
	}
}

// Text renders v as a header line with the month controls, the weekday row and one line per week.
func Text(v calendar.View) string {
	rowWidth := cellWidth * len(v.Weekdays)
	var sb strings.Builder

	sb.WriteString(prevCtl)
	sb.WriteString(center(v.Header, rowWidth-DisplayWidth(prevCtl)-DisplayWidth(nextCtl)))
	sb.WriteString(nextCtl)
	sb.WriteString("\n")

	for _, wd := range v.Weekdays {
		sb.WriteString(padLeft(wd+" ", cellWidth))
	}
	sb.WriteString("\n")

	for _, week := range v.Weeks() {
		line := ""
		for _, c := range week {
			line += Cell(c)
		}
		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}
