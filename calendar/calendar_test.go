package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/mazzegi/minical/date"
	"github.com/mazzegi/minical/testx"
)

func TestDefaultsToToday(t *testing.T) {
	tx := testx.NewTx(t)
	cal := New(Options{Today: func() date.Date { return date.Make(2030, 6, 7) }})
	defer cal.Close()
	tx.AssertEqual(date.Make(2030, 6, 7), cal.GetDate())

	cal2 := New(Options{})
	defer cal2.Close()
	tx.AssertTrue(!cal2.GetDate().IsZero(), "default date must not be zero")
}

func TestSelectDayNotifiesOnly(t *testing.T) {
	tx := testx.NewTx(t)
	var got []date.Date
	cal := New(Options{
		Value:    date.Make(2024, 8, 15),
		OnChange: func(d date.Date) { got = append(got, d) },
	})
	defer cal.Close()

	cal.SelectDay(3)
	tx.AssertEqual([]date.Date{date.Make(2024, 8, 3)}, got)
	tx.AssertEqual(date.Make(2024, 8, 15), cal.GetDate())
	tx.AssertEqual(uint64(0), cal.Revision())
}

func TestSelectDayWithoutCallback(t *testing.T) {
	tx := testx.NewTx(t)
	cal := New(Options{Value: date.Make(2024, 8, 15)})
	defer cal.Close()
	cal.SelectDay(3)
	tx.AssertEqual(date.Make(2024, 8, 15), cal.GetDate())
}

func TestActivate(t *testing.T) {
	tx := testx.NewTx(t)
	var got []date.Date
	cal := New(Options{
		Value:    date.Make(2024, 8, 15),
		OnChange: func(d date.Date) { got = append(got, d) },
	})
	defer cal.Close()

	// August 2024 starts on a Thursday: four blanks
	tx.AssertFalse(cal.Activate(0), "empty cell must not activate")
	tx.AssertFalse(cal.Activate(3), "empty cell must not activate")
	tx.AssertFalse(cal.Activate(-1), "out of range must not activate")
	tx.AssertFalse(cal.Activate(4+31), "out of range must not activate")
	tx.AssertTrue(cal.Activate(4), "day 1 must activate")
	tx.AssertTrue(cal.Activate(4+30), "day 31 must activate")
	tx.AssertEqual([]date.Date{date.Make(2024, 8, 1), date.Make(2024, 8, 31)}, got)
}

func TestSetDateGetDate(t *testing.T) {
	tx := testx.NewTx(t)
	cal := New(Options{Value: date.Make(2024, 8, 15)})
	defer cal.Close()

	h := cal.Handle()
	h.SetDate(date.Make(2024, 4, 1))
	tx.AssertEqual(date.Make(2024, 4, 1), h.GetDate())

	v := cal.View()
	tx.AssertEqual("2024年四月", v.Header)
	tx.AssertEqual(uint64(1), v.Revision)
	tx.AssertEqual(FirstWeekday(2024, 3)+DaysInMonth(2024, 3), len(v.Cells))

	h.SetDate(date.Date{})
	tx.AssertEqual(date.Date{}, h.GetDate())
}

func TestRenderSignal(t *testing.T) {
	tx := testx.NewTx(t)
	cal := New(Options{Value: date.Make(2024, 8, 15)})
	defer cal.Close()

	sub := cal.Subscribe()
	time.AfterFunc(10*time.Millisecond, func() {
		cal.Handle().SetDate(date.Make(2024, 4, 1))
	})
	tx.AssertTrue(sub.Wait(context.Background(), time.Second), "no render after set-date")
	tx.AssertEqual(date.Make(2024, 4, 1), cal.GetDate())
}

func TestEndToEnd(t *testing.T) {
	tx := testx.NewTx(t)
	cal := New(Options{Value: date.MustParse("2024-08-15")})
	defer cal.Close()

	v := cal.View()
	tx.AssertEqual("2024年八月", v.Header)
	sel, ok := v.Selected()
	tx.AssertTrue(ok, "no cell selected")
	tx.AssertEqual(15, sel)
	tx.AssertEqual(4, v.LeadingBlanks())
	tx.AssertEqual([]string{"日", "一", "二", "三", "四", "五", "六"}, v.Weekdays)

	cal.NextMonth()
	v = cal.View()
	tx.AssertEqual("2024年九月", v.Header)
	sel, ok = v.Selected()
	tx.AssertTrue(ok, "no cell selected")
	tx.AssertEqual(1, sel)

	cal.PrevMonth()
	cal.PrevMonth()
	tx.AssertEqual(date.Make(2024, 7, 1), cal.GetDate())
	tx.AssertEqual("2024年七月", cal.View().Header)
	tx.AssertEqual(uint64(3), cal.Revision())
}

func TestYearRollover(t *testing.T) {
	tx := testx.NewTx(t)
	cal := New(Options{Value: date.Make(2024, 12, 5)})
	defer cal.Close()
	cal.NextMonth()
	tx.AssertEqual(date.Make(2025, 1, 1), cal.GetDate())
	tx.AssertEqual("2025年一月", cal.View().Header)

	cal.SetDate(date.Make(2024, 1, 5))
	cal.PrevMonth()
	tx.AssertEqual(date.Make(2023, 12, 1), cal.GetDate())
	tx.AssertEqual("2023年十二月", cal.View().Header)
}
