// Package koyomi computes Japanese calendar facts for Gregorian dates: the
// imperial era (元号) and era year, the Japanese day of the week, and the
// national holidays (国民の祝日) including 振替休日 and 国民の休日.
//
// Holidays are derived from the holiday laws rather than from a fixed list,
// so any date from 1948 onwards can be queried. Equinox days are known for
// 1900 through 2099.
//
// Working with Date values:
//
//	d, _ := koyomi.Parse("2019-04-30")
//	name, _ := d.Holiday()   // "国民の休日"
//	era, _ := d.Era()
//	era.Format()             // "平成31年"
//
// Ranges of days are built from year or year-month tokens:
//
//	cal, _ := koyomi.Build().Single("2018").Finalize()
//	days := cal.Make()       // 365 days
//
// time.Time inputs to the package-level functions and to [Almanac] are
// normalized to JST (Asia/Tokyo, UTC+9) before extracting the calendar date.
// An Almanac layers custom holidays on top of the national ones:
//
//	a := koyomi.New()
//	a.AddCustomHoliday(t, "会社記念日")
package koyomi

import (
	"sync"
	"time"

	"github.com/rickar/cal/v2"
)

// Holiday represents a single holiday entry.
type Holiday struct {
	Date time.Time // The date of the holiday (midnight UTC).
	Name string    // The Japanese name of the holiday (e.g., "元日").
}

// Almanac answers holiday and business-day questions, with support for
// custom holidays. Create one with [New]. All methods are safe for
// concurrent use.
type Almanac struct {
	mu       sync.RWMutex
	custom   map[Date]string
	removed  map[Date]bool
	business *cal.BusinessCalendar
}

// New creates an Almanac backed by the national holiday rules.
func New() *Almanac {
	a := &Almanac{
		custom:  make(map[Date]string),
		removed: make(map[Date]bool),
	}
	a.business = cal.NewBusinessCalendar()
	a.business.WorkdayFunc = a.isWorkday
	return a
}

// defaultAlmanac is used by the package-level functions.
var defaultAlmanac = New()

// lookup returns the holiday name for a date, checking custom holidays
// first, then the national holidays (unless removed).
func (a *Almanac) lookup(d Date) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lookupLocked(d)
}

func (a *Almanac) lookupLocked(d Date) (string, bool) {
	if name, ok := a.custom[d]; ok {
		return name, true
	}
	if a.removed[d] {
		return "", false
	}
	return HolidayOf(d)
}

// IsHoliday reports whether the given date is a holiday (national or custom).
// The input time is converted to JST (Asia/Tokyo, UTC+9) before extracting
// the calendar date, so the result is always correct for the Japanese
// calendar regardless of the input timezone.
func (a *Almanac) IsHoliday(t time.Time) bool {
	_, ok := a.lookupTime(t)
	return ok
}

// HolidayName returns the holiday name for the given date, or an empty
// string if it is not a holiday.
func (a *Almanac) HolidayName(t time.Time) string {
	name, _ := a.lookupTime(t)
	return name
}

// lookupTime is lookup for a time.Time. Times whose JST date is outside
// MinYear..MaxYear are never holidays.
func (a *Almanac) lookupTime(t time.Time) (string, bool) {
	d, err := DateOf(t)
	if err != nil {
		return "", false
	}
	return a.lookup(d)
}

// boundOf is DateOf clamped to the supported range, for range bounds.
func boundOf(t time.Time) Date {
	d, err := DateOf(t)
	if err == nil {
		return d
	}
	if t.In(jstZone).Year() < MinYear {
		return firstDate
	}
	return lastDate
}

// HolidaysInYear returns all holidays in the given year, sorted by date.
func (a *Almanac) HolidaysInYear(year int) []Holiday {
	from, err := FromYMD(year, time.January, 1)
	if err != nil {
		return nil
	}
	return a.holidaysInRange(from, MustDate(year, time.December, 31))
}

// HolidaysInMonth returns all holidays in the given year and month, sorted by date.
func (a *Almanac) HolidaysInMonth(year int, month time.Month) []Holiday {
	from, err := FromYMD(year, month, 1)
	if err != nil {
		return nil
	}
	return a.holidaysInRange(from, MustDate(year, month, DaysIn(year, month)))
}

// HolidaysBetween returns all holidays in the range [from, to] inclusive,
// sorted by date. If from is after to, returns nil.
func (a *Almanac) HolidaysBetween(from, to time.Time) []Holiday {
	fromD := boundOf(from)
	toD := boundOf(to)
	if toD.before(fromD) {
		return nil
	}
	return a.holidaysInRange(fromD, toD)
}

// HolidaysIn returns the holidays within a calendar, sorted by date.
func (a *Almanac) HolidaysIn(c *Calendar) []Holiday {
	return a.holidaysInRange(c.from, c.until)
}

// holidaysInRange collects holidays within the given date range (inclusive).
func (a *Almanac) holidaysInRange(from, to Date) []Holiday {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var result []Holiday
	d := from
	for d.inRange(from, to) {
		if name, ok := a.lookupLocked(d); ok {
			result = append(result, Holiday{Date: d.Time(), Name: name})
		}
		next, err := d.Tomorrow()
		if err != nil {
			break
		}
		d = next
	}
	return result
}

// AddCustomHoliday registers a custom holiday on the given date.
// If a custom holiday already exists on that date, it is overwritten.
// If a national holiday exists on the same date, this custom holiday takes
// precedence in lookups and list APIs.
// Dates outside MinYear..MaxYear in JST are ignored, as in the other mutators.
func (a *Almanac) AddCustomHoliday(t time.Time, name string) {
	d, err := DateOf(t)
	if err != nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.custom[d] = name
}

// RemoveCustomHoliday removes a previously added custom holiday.
// Has no effect if no custom holiday exists on that date.
func (a *Almanac) RemoveCustomHoliday(t time.Time) {
	d, err := DateOf(t)
	if err != nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.custom, d)
}

// RemoveHoliday suppresses a national holiday so it no longer appears in
// queries. Has no effect on custom holidays. Use [Almanac.RestoreHoliday] to undo.
func (a *Almanac) RemoveHoliday(t time.Time) {
	d, err := DateOf(t)
	if err != nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.removed[d] = true
}

// RestoreHoliday restores a previously removed national holiday.
func (a *Almanac) RestoreHoliday(t time.Time) {
	d, err := DateOf(t)
	if err != nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.removed, d)
}

// --- Package-level convenience functions ---

// IsHoliday reports whether the given date is a holiday.
func IsHoliday(t time.Time) bool { return defaultAlmanac.IsHoliday(t) }

// HolidayName returns the holiday name for the given date, or "".
func HolidayName(t time.Time) string { return defaultAlmanac.HolidayName(t) }

// HolidaysInYear returns all holidays in the given year, sorted by date.
func HolidaysInYear(year int) []Holiday { return defaultAlmanac.HolidaysInYear(year) }

// HolidaysInMonth returns all holidays in the given year and month, sorted by date.
func HolidaysInMonth(year int, month time.Month) []Holiday {
	return defaultAlmanac.HolidaysInMonth(year, month)
}

// HolidaysBetween returns all holidays in the range [from, to] inclusive.
func HolidaysBetween(from, to time.Time) []Holiday {
	return defaultAlmanac.HolidaysBetween(from, to)
}

// HolidaysIn returns the holidays within a calendar, sorted by date.
func HolidaysIn(c *Calendar) []Holiday { return defaultAlmanac.HolidaysIn(c) }

// AddCustomHoliday registers a custom holiday on the default almanac.
func AddCustomHoliday(t time.Time, name string) { defaultAlmanac.AddCustomHoliday(t, name) }

// RemoveCustomHoliday removes a custom holiday from the default almanac.
func RemoveCustomHoliday(t time.Time) { defaultAlmanac.RemoveCustomHoliday(t) }

// RemoveHoliday suppresses a national holiday on the default almanac.
func RemoveHoliday(t time.Time) { defaultAlmanac.RemoveHoliday(t) }

// RestoreHoliday restores a suppressed national holiday on the default almanac.
func RestoreHoliday(t time.Time) { defaultAlmanac.RestoreHoliday(t) }
