package date

import (
	"testing"
	"time"

	"github.com/mazzegi/minical/testx"
)

func TestYearMonthNumDays(t *testing.T) {
	tx := testx.NewTx(t)
	type test struct {
		ym   YearMonth
		want int
	}
	tests := []test{
		{MakeYearMonth(2024, time.February), 29},
		{MakeYearMonth(2023, time.February), 28},
		{MakeYearMonth(1900, time.February), 28},
		{MakeYearMonth(2000, time.February), 29},
		{MakeYearMonth(2024, time.April), 30},
		{MakeYearMonth(2024, time.December), 31},
		{MakeYearMonth(2024, time.January), 31},
	}
	testx.RunTestsParallel(tx, tests, func(tx *testx.Tx, test test) {
		tx.AssertEqual(test.want, test.ym.NumDays())
	})
}

func TestYearMonthFirstWeekday(t *testing.T) {
	tx := testx.NewTx(t)
	tx.AssertEqual(time.Thursday, MakeYearMonth(2024, time.August).FirstWeekday())
	tx.AssertEqual(time.Sunday, MakeYearMonth(2024, time.September).FirstWeekday())
	tx.AssertEqual(time.Monday, MakeYearMonth(2024, time.April).FirstWeekday())
}

func TestYearMonthNavigation(t *testing.T) {
	tx := testx.NewTx(t)
	dec := MakeYearMonth(2024, time.December)
	tx.AssertEqual(MakeYearMonth(2025, time.January), dec.Next())
	tx.AssertEqual(dec, dec.Next().Previous())
	tx.AssertEqual(MakeYearMonth(2023, time.December), MakeYearMonth(2024, time.January).Previous())
	tx.AssertEqual(MakeYearMonth(2026, time.February), dec.AddMonths(14))
	tx.AssertEqual("2024-12", dec.String())
}

func TestYearMonthDay(t *testing.T) {
	tx := testx.NewTx(t)
	ym := MakeYearMonth(2024, time.March)
	tx.AssertEqual(Make(2024, 3, 1), ym.First())
	tx.AssertEqual(Make(2024, 3, 15), ym.Day(15))
	tx.AssertEqual(Make(2024, 2, 29), ym.Day(0))
	tx.AssertEqual(ym, Make(2024, 3, 31).YearMonth())
}
