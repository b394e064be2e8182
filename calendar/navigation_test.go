package calendar

import (
	"testing"

	"github.com/mazzegi/minical/date"
	"github.com/mazzegi/minical/testx"
)

func TestNavigation(t *testing.T) {
	tx := testx.NewTx(t)
	type test struct {
		in       date.Date
		wantPrev date.Date
		wantNext date.Date
	}
	tests := []test{
		{date.Make(2024, 12, 5), date.Make(2024, 11, 1), date.Make(2025, 1, 1)},
		{date.Make(2024, 1, 5), date.Make(2023, 12, 1), date.Make(2024, 2, 1)},
		{date.Make(2024, 1, 31), date.Make(2023, 12, 1), date.Make(2024, 2, 1)},
		{date.Make(2024, 3, 31), date.Make(2024, 2, 1), date.Make(2024, 4, 1)},
	}
	testx.RunTestsParallel(tx, tests, func(tx *testx.Tx, test test) {
		tx.AssertEqual(test.wantPrev, PrevMonth(test.in))
		tx.AssertEqual(test.wantNext, NextMonth(test.in))
	})
}

func TestNextThenPrevReturnsToFirstOfMonth(t *testing.T) {
	tx := testx.NewTx(t)
	for d := date.Make(2023, 1, 1); d.Before(date.Make(2025, 1, 1)); d = d.AddDays(3) {
		back := PrevMonth(NextMonth(d))
		tx.AssertEqual(d.YearMonth(), back.YearMonth())
		tx.AssertEqual(1, back.Day())
	}
}
