package koyomi

import "time"

// searchWindow bounds how far NextHoliday, PreviousHoliday and the business
// day searches scan. Every year since 1948 has several national holidays.
const searchWindow = 366

// isWorkday is the WorkdayFunc of the almanac's business calendar.
func (a *Almanac) isWorkday(t time.Time) bool {
	d, err := DateOf(t)
	if err != nil {
		return false
	}
	if d.weekday == time.Saturday || d.weekday == time.Sunday {
		return false
	}
	_, ok := a.lookup(d)
	return !ok
}

// IsBusinessDay reports whether the given date is a business day
// (neither a weekend nor a holiday). The date is interpreted in JST.
func (a *Almanac) IsBusinessDay(t time.Time) bool {
	return a.business.IsWorkday(t)
}

// NextHoliday returns the next holiday strictly after the given date.
// National holidays are searched up to a year ahead; custom holidays at any
// distance. Returns false if none is found.
func (a *Almanac) NextHoliday(t time.Time) (Holiday, bool) {
	d, err := DateOf(t)
	if err != nil {
		return Holiday{}, false
	}
	return a.nearestHoliday(d, 1)
}

// PreviousHoliday returns the most recent holiday strictly before the given date.
// National holidays are searched up to a year back; custom holidays at any
// distance. Returns false if none is found.
func (a *Almanac) PreviousHoliday(t time.Time) (Holiday, bool) {
	d, err := DateOf(t)
	if err != nil {
		return Holiday{}, false
	}
	return a.nearestHoliday(d, -1)
}

// nearestHoliday scans from d in direction dir (+1 or -1), excluding d.
func (a *Almanac) nearestHoliday(d Date, dir int) (Holiday, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	// closer reports whether x is strictly between d and y in direction dir.
	closer := func(x, y Date) bool {
		if dir > 0 {
			return x.before(y)
		}
		return y.before(x)
	}
	beyond := func(x Date) bool {
		if dir > 0 {
			return d.before(x)
		}
		return x.before(d)
	}

	var best Date
	var bestName string
	found := false
	for cd, name := range a.custom {
		if beyond(cd) && (!found || closer(cd, best)) {
			best = cd
			bestName = name
			found = true
		}
	}

	cur := d
	for range searchWindow {
		var err error
		if dir > 0 {
			cur, err = cur.Tomorrow()
		} else {
			cur, err = cur.Yesterday()
		}
		if err != nil || (found && !closer(cur, best)) {
			break
		}
		if name, ok := a.lookupLocked(cur); ok {
			best = cur
			bestName = name
			found = true
			break
		}
	}

	if !found {
		return Holiday{}, false
	}
	return Holiday{Date: best.Time(), Name: bestName}, true
}

// NextBusinessDay returns the next business day on or after the given date.
// If t itself is a business day, it returns t (normalized to midnight UTC).
// Returns the zero time if no business day is found within 366 days.
func (a *Almanac) NextBusinessDay(t time.Time) time.Time {
	return a.seekBusinessDay(t, 1)
}

// PreviousBusinessDay returns the most recent business day on or before the given date.
// If t itself is a business day, it returns t (normalized to midnight UTC).
// Returns the zero time if no business day is found within 366 days.
func (a *Almanac) PreviousBusinessDay(t time.Time) time.Time {
	return a.seekBusinessDay(t, -1)
}

// seekBusinessDay returns the first business day from t in direction dir
// (+1 or -1), t included.
func (a *Almanac) seekBusinessDay(t time.Time, dir int) time.Time {
	d, err := DateOf(t)
	if err != nil {
		return time.Time{}
	}
	// Midnight UTC is already the same date in JST.
	start := d.Time()
	lo, hi := start, start.AddDate(0, 0, dir*(searchWindow-1))
	if dir < 0 {
		lo, hi = hi, lo
	}
	if a.business.WorkdaysInRange(lo, hi) == 0 {
		return time.Time{}
	}
	return a.business.WorkdaysFrom(start.AddDate(0, 0, -dir), dir)
}

// BusinessDaysBetween returns the count of business days in the range [from, to] inclusive.
// If from is after to, returns 0.
func (a *Almanac) BusinessDaysBetween(from, to time.Time) int {
	fromD := boundOf(from)
	toD := boundOf(to)
	if toD.before(fromD) {
		return 0
	}
	return a.business.WorkdaysInRange(fromD.Time(), toD.Time())
}

// --- Package-level convenience functions ---

// IsBusinessDay reports whether the given date is a business day.
func IsBusinessDay(t time.Time) bool { return defaultAlmanac.IsBusinessDay(t) }

// NextHoliday returns the next holiday strictly after the given date.
func NextHoliday(t time.Time) (Holiday, bool) { return defaultAlmanac.NextHoliday(t) }

// PreviousHoliday returns the most recent holiday strictly before the given date.
func PreviousHoliday(t time.Time) (Holiday, bool) { return defaultAlmanac.PreviousHoliday(t) }

// NextBusinessDay returns the next business day on or after the given date.
func NextBusinessDay(t time.Time) time.Time { return defaultAlmanac.NextBusinessDay(t) }

// PreviousBusinessDay returns the most recent business day on or before the given date.
func PreviousBusinessDay(t time.Time) time.Time { return defaultAlmanac.PreviousBusinessDay(t) }

// BusinessDaysBetween returns the count of business days in the range [from, to].
func BusinessDaysBetween(from, to time.Time) int { return defaultAlmanac.BusinessDaysBetween(from, to) }
