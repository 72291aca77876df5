package calendar

import (
	"fmt"
	"time"

	"github.com/golang-module/carbon/v2"
)

// MonthDay is a yearly recurring date with the year discarded.
type MonthDay struct {
	Month int
	Day   int
}

func (d MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", d.Month, d.Day)
}

// TargetDate returns the month and day exactly daysAhead days after ref.
// Day-of-month rollover is leap-year-correct because the reference year is
// used for the addition before the year is discarded.
func TargetDate(ref time.Time, daysAhead int) MonthDay {
	c := carbon.Time2Carbon(ref.In(time.UTC)).AddDays(daysAhead)
	return MonthDay{Month: c.Month(), Day: c.Day()}
}

// TargetDates returns every stored occurrence that lands exactly daysAhead
// days after ref. Usually that is the single month/day TargetDate returns,
// but when the target is Mar 1 of a non-leap year a stored Feb 29
// occurrence normalizes to the same day and is included as an alias.
func TargetDates(ref time.Time, daysAhead int) []MonthDay {
	c := carbon.Time2Carbon(ref.In(time.UTC)).AddDays(daysAhead)
	target := MonthDay{Month: c.Month(), Day: c.Day()}
	if target.Month == 3 && target.Day == 1 && !c.IsLeapYear() {
		return []MonthDay{target, {Month: 2, Day: 29}}
	}
	return []MonthDay{target}
}

// DaysUntilNextOccurrence returns the number of days from ref to the next
// same-day-or-future yearly occurrence of (month, day). The result is never
// negative. A Feb 29 occurrence normalizes to Mar 1 in non-leap years.
func DaysUntilNextOccurrence(ref time.Time, month int, day int) int {
	refDay := carbon.Time2Carbon(ref.In(time.UTC)).StartOfDay()
	occurrence := occurrenceOf(refDay.Year(), month, day)
	if occurrence.Lt(refDay) {
		occurrence = occurrenceOf(refDay.Year()+1, month, day)
	}
	return int(refDay.DiffInDays(occurrence))
}

func occurrenceOf(year int, month int, day int) carbon.Carbon {
	return carbon.Time2Carbon(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
}

// MaxDaysInMonth returns the largest valid day of the month, counting
// Feb 29 as valid.
func MaxDaysInMonth(month int) int {
	// 2000 is a leap year.
	return carbon.Time2Carbon(time.Date(2000, time.Month(month), 1, 0, 0, 0, 0, time.UTC)).DaysInMonth()
}
