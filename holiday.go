package koyomi

import "time"

// Names of the derived holidays.
const (
	SubstituteHolidayName = "振替休日"
	CitizensHolidayName   = "国民の休日"
)

// Years the holiday laws took effect.
const (
	// 国民の祝日に関する法律
	holidayLawYear = 1948
	// 振替休日
	substituteLawYear = 1973
	// 国民の休日
	citizensLawYear = 1986
)

// maxSubstituteLookback bounds the backward walk of the substitute rule.
// A week of consecutive holidays would be needed to exceed it.
const maxSubstituteLookback = 7

// holidayRule reports the name of the holiday a date falls on.
type holidayRule interface {
	match(d Date) (string, bool)
}

// fixedRule is a holiday on the same month and day every year in [from, until].
// until == 0 means the holiday is still in effect.
type fixedRule struct {
	name  string
	from  int
	month time.Month
	day   int
	until int
}

func (r fixedRule) match(d Date) (string, bool) {
	if d.year < r.from || (r.until != 0 && d.year > r.until) {
		return "", false
	}
	if d.month != r.month || d.day != r.day {
		return "", false
	}
	return r.name, true
}

// fixedRules follows the 国民の祝日に関する法律 and its amendments, plus the
// one-day holidays enacted by special laws.
var fixedRules = []fixedRule{
	{"元日", 1948, time.January, 1, 0},
	{"成人の日", 1948, time.January, 15, 1999},
	{"建国記念日", 1967, time.February, 11, 0},
	{"天皇誕生日", 1948, time.April, 29, 1988},
	{"みどりの日", 1989, time.April, 29, 2006},
	{"昭和の日", 2007, time.April, 29, 0},
	{"憲法記念日", 1948, time.May, 3, 0},
	{"みどりの日", 2007, time.May, 4, 0},
	{"こどもの日", 1948, time.May, 5, 0},
	{"海の日", 1996, time.July, 20, 2002},
	{"山の日", 2016, time.August, 11, 0},
	{"敬老の日", 1966, time.September, 15, 2002},
	{"体育の日", 1966, time.October, 10, 1999},
	{"文化の日", 1948, time.November, 3, 0},
	{"勤労感謝の日", 1948, time.November, 23, 0},
	{"天皇誕生日", 1989, time.December, 23, 2018},

	{"皇太子明仁親王の結婚の儀", 1959, time.April, 10, 1959},
	{"昭和天皇の大喪の礼", 1989, time.February, 24, 1989},
	{"即位礼正殿の儀", 1990, time.November, 12, 1990},
	{"皇太子徳仁親王の結婚の儀", 1993, time.June, 9, 1993},
	{"新天皇即位日", 2019, time.May, 1, 2019},
	{"即位礼正殿の儀", 2019, time.October, 22, 2019},
}

// floatingRule is a holiday on the nth Monday of a month. It applies to years
// after since, the last year the holiday had a fixed date.
type floatingRule struct {
	name  string
	month time.Month
	week  int
	since int
}

func (r floatingRule) match(d Date) (string, bool) {
	if d.month != r.month || d.weekday != time.Monday || d.year <= r.since {
		return "", false
	}
	if (d.day-1)/7 != r.week-1 {
		return "", false
	}
	return r.name, true
}

// floatingRules are the ハッピーマンデー holidays.
var floatingRules = []floatingRule{
	{"成人の日", time.January, 2, 1999},
	{"海の日", time.July, 3, 2002},
	{"敬老の日", time.September, 3, 2002},
	{"体育の日", time.October, 2, 1999},
}

// equinoxBand gives the equinox day of month for years in [from, to],
// indexed by year % 4.
type equinoxBand struct {
	from, to int
	days     [4]int
}

// equinoxRule is a holiday on the equinox of the given month.
// The day comes from a table and years outside it never match.
type equinoxRule struct {
	name  string
	month time.Month
	from  int
	bands []equinoxBand
}

func (r equinoxRule) match(d Date) (string, bool) {
	if d.month != r.month || d.year < r.from {
		return "", false
	}
	day, ok := r.dayOf(d.year)
	if !ok || d.day != day {
		return "", false
	}
	return r.name, true
}

func (r equinoxRule) dayOf(year int) (int, bool) {
	for _, b := range r.bands {
		if b.from <= year && year <= b.to {
			return b.days[year%4], true
		}
	}
	return 0, false
}

var vernalEquinoxBands = []equinoxBand{
	{1900, 1923, [4]int{21, 21, 21, 22}},
	{1924, 1959, [4]int{21, 21, 21, 21}},
	{1960, 1991, [4]int{20, 21, 21, 21}},
	{1992, 2023, [4]int{20, 20, 21, 21}},
	{2024, 2055, [4]int{20, 20, 20, 21}},
	{2056, 2091, [4]int{20, 20, 20, 20}},
	{2092, 2099, [4]int{19, 20, 20, 20}},
}

var autumnalEquinoxBands = []equinoxBand{
	{1900, 1919, [4]int{23, 24, 24, 24}},
	{1920, 1947, [4]int{23, 23, 24, 24}},
	{1948, 1979, [4]int{23, 23, 23, 24}},
	{1980, 2011, [4]int{23, 23, 23, 23}},
	{2012, 2043, [4]int{22, 23, 23, 23}},
	{2044, 2075, [4]int{22, 22, 23, 23}},
	{2076, 2099, [4]int{22, 22, 22, 23}},
}

var equinoxRules = []equinoxRule{
	{"春分の日", time.March, holidayLawYear + 1, vernalEquinoxBands},
	{"秋分の日", time.September, holidayLawYear, autumnalEquinoxBands},
}

// substituteRule: when a holiday falls on Sunday, the first following day
// that is not a holiday is 振替休日.
type substituteRule struct{}

func (substituteRule) match(d Date) (string, bool) {
	if d.year < substituteLawYear {
		return "", false
	}
	if _, ok := nationalHoliday(d); ok {
		return "", false
	}
	cur := d
	for range maxSubstituteLookback {
		prev, err := cur.Yesterday()
		if err != nil {
			return "", false
		}
		if _, ok := nationalHoliday(prev); !ok {
			return "", false
		}
		if prev.weekday == time.Sunday {
			return SubstituteHolidayName, true
		}
		cur = prev
	}
	return "", false
}

// citizensRule: a day other than Sunday between two holidays is 国民の休日,
// unless it is already 振替休日.
type citizensRule struct{}

func (citizensRule) match(d Date) (string, bool) {
	if d.year < citizensLawYear || d.weekday == time.Sunday {
		return "", false
	}
	if _, ok := nationalHoliday(d); ok {
		return "", false
	}
	if _, ok := (substituteRule{}).match(d); ok {
		return "", false
	}
	prev, err := d.Yesterday()
	if err != nil {
		return "", false
	}
	next, err := d.Tomorrow()
	if err != nil {
		return "", false
	}
	if _, ok := nationalHoliday(prev); !ok {
		return "", false
	}
	if _, ok := nationalHoliday(next); !ok {
		return "", false
	}
	return CitizensHolidayName, true
}

// nationalRules are the 国民の祝日 proper: fixed, floating and equinox.
// The derived holidays are computed from them.
var nationalRules = func() []holidayRule {
	var rules []holidayRule
	for _, r := range fixedRules {
		rules = append(rules, r)
	}
	for _, r := range floatingRules {
		rules = append(rules, r)
	}
	for _, r := range equinoxRules {
		rules = append(rules, r)
	}
	return rules
}()

// derivedRules are evaluated after nationalRules.
var derivedRules = []holidayRule{
	substituteRule{},
	citizensRule{},
}

func nationalHoliday(d Date) (string, bool) {
	if d.year < holidayLawYear {
		return "", false
	}
	return firstMatch(nationalRules, d)
}

func firstMatch(rules []holidayRule, d Date) (string, bool) {
	for _, r := range rules {
		if name, ok := r.match(d); ok {
			return name, true
		}
	}
	return "", false
}

// HolidayOf returns the name of the national holiday on d, or false if d is
// not a holiday. It never fails: dates outside the legislated ranges simply
// have no holiday.
func HolidayOf(d Date) (string, bool) {
	if name, ok := nationalHoliday(d); ok {
		return name, true
	}
	return firstMatch(derivedRules, d)
}

// IsNationalHoliday reports whether d is a holiday.
func IsNationalHoliday(d Date) bool {
	_, ok := HolidayOf(d)
	return ok
}
