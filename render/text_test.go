package render

import (
	"strings"
	"testing"

	"github.com/mazzegi/minical/calendar"
	"github.com/mazzegi/minical/date"
	"github.com/mazzegi/minical/testx"
)

func TestDisplayWidth(t *testing.T) {
	tx := testx.NewTx(t)
	tx.AssertEqual(4, DisplayWidth("2024"))
	tx.AssertEqual(10, DisplayWidth("2024年八月"))
	tx.AssertEqual(2, DisplayWidth("日"))
	tx.AssertEqual(0, DisplayWidth(""))
}

func TestCell(t *testing.T) {
	tx := testx.NewTx(t)
	tx.AssertEqual("    ", Cell(calendar.EmptyCell()))
	tx.AssertEqual("  5 ", Cell(calendar.DayCell(5)))
	tx.AssertEqual(" 15 ", Cell(calendar.DayCell(15)))
	tx.AssertEqual(" [5]", Cell(calendar.Cell{Day: 5, Selected: true}))
	tx.AssertEqual("[15]", Cell(calendar.Cell{Day: 15, Selected: true}))
}

func TestText(t *testing.T) {
	tx := testx.NewTx(t)
	out := Text(calendar.MakeView(date.Make(2024, 8, 15)))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	tx.AssertEqual(2+5, len(lines))
	tx.AssertEqual("<        2024年八月        >", lines[0])
	tx.AssertEqual(" 日  一  二  三  四  五  六 ", lines[1])
	tx.AssertEqual("                  1   2   3", lines[2])
	tx.AssertEqual(" 11  12  13  14 [15] 16  17", lines[4])
	tx.AssertEqual(1, strings.Count(out, "["))
}

func TestTextAfterNavigation(t *testing.T) {
	tx := testx.NewTx(t)
	cal := calendar.New(calendar.Options{Value: date.Make(2024, 8, 15)})
	defer cal.Close()
	cal.NextMonth()

	out := Text(cal.View())
	tx.AssertTrue(strings.Contains(out, "2024年九月"), "header missing in %q", out)
	tx.AssertTrue(strings.Contains(out, " [1]"), "day 1 not selected in %q", out)
	tx.AssertFalse(strings.Contains(out, "[15]"), "day 15 still selected in %q", out)
}
