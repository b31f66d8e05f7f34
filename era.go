package koyomi

import (
	"strconv"
	"time"
)

// Era is a Japanese imperial era (元号) resolved for a particular date.
type Era struct {
	name  string
	ad    int
	start Date
	end   Date // zero while the era is current
}

// eras lists the eras since Meiji, newest first. The end of each era is the
// day before its successor starts.
var eras = []Era{
	{name: "平成", start: MustDate(1989, time.January, 8)},
	{name: "昭和", start: MustDate(1926, time.December, 25), end: MustDate(1989, time.January, 7)},
	{name: "大正", start: MustDate(1912, time.July, 30), end: MustDate(1926, time.December, 24)},
	{name: "明治", start: MustDate(1868, time.January, 25), end: MustDate(1912, time.July, 29)},
}

// EraOf returns the era containing d. Dates before Meiji (1868-01-25) have no era.
func EraOf(d Date) (Era, bool) {
	// Most lookups hit the current era, so scan newest first.
	for _, e := range eras {
		if e.contains(d) {
			e.ad = d.year
			return e, true
		}
	}
	return Era{}, false
}

func (e Era) contains(d Date) bool {
	if d.before(e.start) {
		return false
	}
	return e.end.IsZero() || !e.end.before(d)
}

// Name returns the era name, e.g. "平成".
func (e Era) Name() string { return e.name }

// Year returns the year within the era. The first year is 1.
func (e Era) Year() int { return e.ad - e.start.year + 1 }

// Start returns the first day of the era.
func (e Era) Start() Date { return e.start }

// End returns the last day of the era, or false if the era has not ended.
func (e Era) End() (Date, bool) { return e.end, !e.end.IsZero() }

// Format returns the era year in Japanese, e.g. "平成30年".
// The first year is written "元年" (e.g. "平成元年").
func (e Era) Format() string {
	y := e.Year()
	if y == 1 {
		return e.name + "元年"
	}
	return e.name + strconv.Itoa(y) + "年"
}

// String is the same as Format.
func (e Era) String() string { return e.Format() }
