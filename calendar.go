package koyomi

import (
	"iter"
	"strings"
	"time"
)

// Calendar is an inclusive range of days. Build one with [NewCalendar] or
// from a [CalendarSpec].
type Calendar struct {
	from  Date
	until Date
}

// NewCalendar returns the calendar from from to until inclusive.
// It fails with a [*TermError] unless until is after from.
func NewCalendar(from, until Date) (*Calendar, error) {
	if until.NumDays(from) <= 0 {
		return nil, &TermError{From: from, Until: until}
	}
	return &Calendar{from: from, until: until}, nil
}

// From returns the first day as "YYYY-MM-DD".
func (c *Calendar) From() string { return c.from.String() }

// Until returns the last day as "YYYY-MM-DD".
func (c *Calendar) Until() string { return c.until.String() }

// FromDate returns the first day.
func (c *Calendar) FromDate() Date { return c.from }

// UntilDate returns the last day.
func (c *Calendar) UntilDate() Date { return c.until }

// Len returns the number of days in the calendar.
func (c *Calendar) Len() int { return c.until.NumDays(c.from) + 1 }

// Make returns every day of the calendar in order.
func (c *Calendar) Make() []Date {
	days := make([]Date, 0, c.Len())
	for d := range c.All() {
		days = append(days, d)
	}
	return days
}

// All iterates over the days of the calendar in order.
func (c *Calendar) All() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		d := c.from
		for {
			if !yield(d) || d == c.until {
				return
			}
			next, err := d.Tomorrow()
			if err != nil {
				return
			}
			d = next
		}
	}
}

// CalendarSpec describes a calendar by year ("2018") or year-month
// ("2018-04") tokens. Either SingleToken is set, or both FromToken and
// UntilToken. It can be written as a literal or built fluently:
//
//	cal, err := koyomi.Build().From("2017").Until("2018-04").Finalize()
type CalendarSpec struct {
	SingleToken string
	FromToken   string
	UntilToken  string
}

// Build returns an empty CalendarSpec for fluent construction.
func Build() CalendarSpec { return CalendarSpec{} }

// Single sets a single year or year-month token.
func (s CalendarSpec) Single(tok string) CalendarSpec {
	s.SingleToken = tok
	return s
}

// From sets the start of the range.
func (s CalendarSpec) From(tok string) CalendarSpec {
	s.FromToken = tok
	return s
}

// Until sets the end of the range.
func (s CalendarSpec) Until(tok string) CalendarSpec {
	s.UntilToken = tok
	return s
}

// Finalize resolves the tokens into a Calendar. SingleToken takes precedence
// over the range tokens. FromToken resolves to the first day of its year or
// month, UntilToken to the last day.
func (s CalendarSpec) Finalize() (*Calendar, error) {
	if s.SingleToken != "" {
		from, err := startOf(s.SingleToken)
		if err != nil {
			return nil, err
		}
		until, err := endOf(s.SingleToken)
		if err != nil {
			return nil, err
		}
		return NewCalendar(from, until)
	}

	if s.FromToken == "" {
		return nil, ErrNotEnough
	}
	from, err := startOf(s.FromToken)
	if err != nil {
		return nil, err
	}
	if s.UntilToken == "" {
		return nil, ErrNotEnough
	}
	until, err := endOf(s.UntilToken)
	if err != nil {
		return nil, err
	}
	return NewCalendar(from, until)
}

func startOf(tok string) (Date, error) {
	switch strings.Count(tok, "-") {
	case 0:
		return Parse(tok + "-01-01")
	case 1:
		return Parse(tok + "-01")
	}
	return Date{}, &FormatError{Text: tok}
}

func endOf(tok string) (Date, error) {
	switch strings.Count(tok, "-") {
	case 0:
		return Parse(tok + "-12-31")
	case 1:
		first, err := Parse(tok + "-01")
		if err != nil {
			return Date{}, err
		}
		return FromYMD(first.year, first.month, DaysIn(first.year, first.month))
	}
	return Date{}, &FormatError{Text: tok}
}

// YearCalendar returns the calendar of a whole year.
func YearCalendar(year int) (*Calendar, error) {
	from, err := FromYMD(year, time.January, 1)
	if err != nil {
		return nil, err
	}
	return NewCalendar(from, MustDate(year, time.December, 31))
}
