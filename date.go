package koyomi

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Supported year range for Date values.
const (
	MinYear = 1
	MaxYear = 9999
)

const secondsPerDay = 24 * 60 * 60

// First and last supported dates.
var (
	firstDate = MustDate(MinYear, time.January, 1)
	lastDate  = MustDate(MaxYear, time.December, 31)
)

// jstZone is the Asia/Tokyo timezone (UTC+9) used to normalize input times
// to the Japanese calendar date.
var jstZone = time.FixedZone("Asia/Tokyo", 9*60*60)

// Date is a validated civil date in the proleptic Gregorian calendar.
// The zero value is not a valid date; build one with [Parse], [FromYMD] or [DateOf].
// Dates are comparable and can be used as map keys.
type Date struct {
	year    int
	month   time.Month
	day     int
	weekday time.Weekday
}

// FromYMD returns the date for the given year, month and day.
// It fails with a [*FormatError] if the triple is not a valid calendar date.
func FromYMD(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear || month < time.January || month > time.December ||
		day < 1 || day > DaysIn(year, month) {
		return Date{}, &FormatError{Text: formatYMD(year, month, day)}
	}
	return newDate(year, month, day), nil
}

// MustDate is like [FromYMD] but panics on an invalid date.
// It is intended for static tables and tests.
func MustDate(year int, month time.Month, day int) Date {
	d, err := FromYMD(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// Parse parses a date written as "Y-m-d" or "Y/m/d".
// Fields may omit zero padding. A year shorter than four digits may be
// padded with trailing spaces to width four, as [Date.String] writes it.
func Parse(s string) (Date, error) {
	sep := "-"
	if strings.Contains(s, "/") {
		sep = "/"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return Date{}, &FormatError{Text: s}
	}

	var nums [3]int
	for i, p := range parts {
		if i == 0 && len(p) == 4 {
			p = strings.TrimRight(p, " ")
		}
		if p == "" || strings.ContainsAny(p, "+- ") {
			return Date{}, &FormatError{Text: s}
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, &FormatError{Text: s}
		}
		nums[i] = n
	}

	d, err := FromYMD(nums[0], time.Month(nums[1]), nums[2])
	if err != nil {
		return Date{}, &FormatError{Text: s}
	}
	return d, nil
}

// DateOf converts a time.Time to a Date by first normalizing to JST.
// This ensures that a moment in time always maps to the correct Japanese
// calendar date regardless of the input timezone.
// It fails with a [*FormatError] if the JST date is outside MinYear..MaxYear.
func DateOf(t time.Time) (Date, error) {
	y, m, d := t.In(jstZone).Date()
	return FromYMD(y, m, d)
}

func newDate(year int, month time.Month, day int) Date {
	wd := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
	return Date{year: year, month: month, day: day, weekday: wd}
}

// Year returns the year.
func (d Date) Year() int { return d.year }

// Month returns the month.
func (d Date) Month() time.Month { return d.month }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday { return d.weekday }

// JapaneseWeekday returns the one-character Japanese weekday, e.g. "月".
func (d Date) JapaneseWeekday() string { return JapaneseWeekday(d.weekday) }

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Tomorrow returns the following day.
// It fails with a [*StepError] wrapping [ErrNoSuccessor] at the last supported date.
func (d Date) Tomorrow() (Date, error) {
	if !d.before(lastDate) {
		return Date{}, &StepError{Date: d, Err: ErrNoSuccessor}
	}
	return d.addDays(1), nil
}

// Yesterday returns the preceding day.
// It fails with a [*StepError] wrapping [ErrNoPredecessor] at the first supported date.
func (d Date) Yesterday() (Date, error) {
	if !firstDate.before(d) {
		return Date{}, &StepError{Date: d, Err: ErrNoPredecessor}
	}
	return d.addDays(-1), nil
}

func (d Date) addDays(n int) Date {
	t := d.Time().AddDate(0, 0, n)
	y, m, day := t.Date()
	return Date{year: y, month: m, day: day, weekday: t.Weekday()}
}

// NumDays returns the number of days from other to d.
// The result is negative when d is before other.
func (d Date) NumDays(other Date) int {
	return int((d.Time().Unix() - other.Time().Unix()) / secondsPerDay)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to,
// or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.before(other):
		return -1
	case other.before(d):
		return 1
	}
	return 0
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool { return d.before(other) }

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool { return other.before(d) }

// Equal reports whether d and other are the same day.
func (d Date) Equal(other Date) bool { return d == other }

func (d Date) before(other Date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

func (d Date) inRange(from, to Date) bool {
	return !d.before(from) && !to.before(d)
}

// String returns the date as "YYYY-MM-DD". Years shorter than four digits are
// left justified to width four rather than zero padded.
func (d Date) String() string {
	return formatYMD(d.year, d.month, d.day)
}

func formatYMD(year int, month time.Month, day int) string {
	return fmt.Sprintf("%-4d-%02d-%02d", year, int(month), day)
}

// Era returns the imperial era containing d.
func (d Date) Era() (Era, bool) { return EraOf(d) }

// Holiday returns the national holiday name for d, if any.
func (d Date) Holiday() (string, bool) { return HolidayOf(d) }

// IsLeap reports whether year is a leap year in the Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	}
	return 31
}
