package koyomi

import (
	"testing"
	"time"
)

func TestIsBusinessDay(t *testing.T) {
	// 2018: Jan 1 = Mon, Jun 4 = Mon
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"Wednesday non-holiday", d(2018, time.June, 13), true},
		{"Thursday non-holiday", d(2018, time.June, 14), true},
		{"Friday non-holiday", d(2018, time.June, 15), true},
		{"Saturday", d(2018, time.June, 9), false},
		{"Sunday", d(2018, time.June, 10), false},
		{"New Years Day (Monday)", d(2018, time.January, 1), false},
		{"Substitute holiday", d(2018, time.April, 30), false},
		{"Citizens holiday", d(2019, time.April, 30), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBusinessDay(tt.date); got != tt.want {
				t.Errorf("IsBusinessDay(%s) = %v, want %v",
					tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestIsBusinessDay_JSTNormalization(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want bool
	}{
		{
			// 2018-01-05 (Fri) 20:00 UTC = 2018-01-06 (Sat) 05:00 JST
			"UTC Friday evening is Saturday in JST",
			time.Date(2018, time.January, 5, 20, 0, 0, 0, time.UTC),
			false,
		},
		{
			// 2018-01-05 (Fri) 14:59 UTC = 2018-01-05 (Fri) 23:59 JST
			"UTC Friday afternoon is still Friday in JST",
			time.Date(2018, time.January, 5, 14, 59, 0, 0, time.UTC),
			true,
		},
		{
			// 2018-01-07 (Sun) 15:00 UTC = 2018-01-08 (Mon 成人の日) 00:00 JST
			"UTC Sunday 15:00 is a Monday holiday in JST",
			time.Date(2018, time.January, 7, 15, 0, 0, 0, time.UTC),
			false,
		},
		{
			// 2018-01-07 (Sun) 14:59 UTC = 2018-01-07 (Sun) 23:59 JST
			"UTC Sunday 14:59 is still Sunday in JST",
			time.Date(2018, time.January, 7, 14, 59, 0, 0, time.UTC),
			false,
		},
		{
			// 2018-01-08 (Mon 成人の日) 15:00 UTC = 2018-01-09 (Tue) 00:00 JST
			"UTC Monday holiday 15:00 is Tuesday in JST",
			time.Date(2018, time.January, 8, 15, 0, 0, 0, time.UTC),
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBusinessDay(tt.time); got != tt.want {
				jst := time.FixedZone("JST", 9*60*60)
				t.Errorf("IsBusinessDay(%v) = %v, want %v (JST: %v %v)",
					tt.time.Format(time.RFC3339),
					got, tt.want,
					tt.time.In(jst).Format("2006-01-02 15:04"),
					tt.time.In(jst).Weekday())
			}
		})
	}
}

func TestIsBusinessDay_CustomHoliday(t *testing.T) {
	a := New()
	day := d(2018, time.June, 13) // Wednesday
	if !a.IsBusinessDay(day) {
		t.Fatal("should be a business day by default")
	}

	a.AddCustomHoliday(day, "会社記念日")
	if a.IsBusinessDay(day) {
		t.Fatal("should not be a business day with custom holiday")
	}
}

func TestIsBusinessDay_RemovedHoliday(t *testing.T) {
	a := New()
	day := d(2018, time.January, 1)
	a.RemoveHoliday(day)
	if !a.IsBusinessDay(day) {
		t.Fatal("a removed holiday on Monday should be a business day")
	}
}

func TestNextHoliday(t *testing.T) {
	h, ok := NextHoliday(d(2018, time.January, 1))
	if !ok {
		t.Fatal("expected a next holiday")
	}
	if h.Date != d(2018, time.January, 8) {
		t.Errorf("NextHoliday after 2018-01-01 = %s, want 2018-01-08",
			h.Date.Format("2006-01-02"))
	}
	if h.Name != "成人の日" {
		t.Errorf("NextHoliday name = %q, want 成人の日", h.Name)
	}
}

func TestNextHoliday_SubstituteFollows(t *testing.T) {
	h, ok := NextHoliday(d(2018, time.December, 23))
	if !ok {
		t.Fatal("expected a next holiday")
	}
	if h.Date != d(2018, time.December, 24) || h.Name != SubstituteHolidayName {
		t.Errorf("NextHoliday after 2018-12-23 = %s %q, want 2018-12-24 振替休日",
			h.Date.Format("2006-01-02"), h.Name)
	}
}

func TestNextHoliday_EndOfCalendar(t *testing.T) {
	_, ok := NextHoliday(d(MaxYear, time.December, 30))
	if ok {
		t.Error("should return false at the end of the calendar")
	}
}

func TestNextHoliday_BeforeLaw(t *testing.T) {
	// The search window ends in early 1947, before the first holiday.
	_, ok := NextHoliday(d(1946, time.January, 1))
	if ok {
		t.Error("should return false when no holiday is within a year")
	}
}

func TestNextHoliday_DistantCustom(t *testing.T) {
	a := New()
	a.AddCustomHoliday(d(1930, time.January, 1), "記念日")

	h, ok := a.NextHoliday(d(1920, time.January, 1))
	if !ok {
		t.Fatal("custom holidays should be found at any distance")
	}
	if h.Date != d(1930, time.January, 1) {
		t.Errorf("NextHoliday = %s, want 1930-01-01", h.Date.Format("2006-01-02"))
	}
}

func TestNextHoliday_CustomCloser(t *testing.T) {
	a := New()
	a.AddCustomHoliday(d(2018, time.January, 5), "仕事始め休み")

	h, ok := a.NextHoliday(d(2018, time.January, 1))
	if !ok || h.Date != d(2018, time.January, 5) {
		t.Errorf("NextHoliday = %v %v, want 2018-01-05", h, ok)
	}
}

func TestPreviousHoliday(t *testing.T) {
	h, ok := PreviousHoliday(d(2018, time.January, 8))
	if !ok {
		t.Fatal("expected a previous holiday")
	}
	if h.Date != d(2018, time.January, 1) {
		t.Errorf("PreviousHoliday before 2018-01-08 = %s, want 2018-01-01",
			h.Date.Format("2006-01-02"))
	}
}

func TestPreviousHoliday_BeforeLaw(t *testing.T) {
	_, ok := PreviousHoliday(d(1947, time.June, 1))
	if ok {
		t.Error("should return false before the holiday law")
	}
}

func TestNextBusinessDay(t *testing.T) {
	// 2018: Jan 1 = Mon, Jun 4 = Mon
	tests := []struct {
		name string
		date time.Time
		want time.Time
	}{
		{"Already business day (Friday)", d(2018, time.June, 8), d(2018, time.June, 8)},
		{"Saturday -> Monday", d(2018, time.June, 9), d(2018, time.June, 11)},
		{"Sunday -> Monday", d(2018, time.June, 10), d(2018, time.June, 11)},
		{"Holiday -> next weekday", d(2018, time.January, 1), d(2018, time.January, 2)},
		// 2019-04-27 Sat through 05-06 Mon are all days off.
		{"GW 2019 Saturday -> Tuesday", d(2019, time.April, 27), d(2019, time.May, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextBusinessDay(tt.date)
			if got != tt.want {
				t.Errorf("NextBusinessDay(%s) = %s, want %s",
					tt.date.Format("2006-01-02"),
					got.Format("2006-01-02"),
					tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestNextBusinessDay_ZeroOnExhaustion(t *testing.T) {
	a := New()
	start := d(2018, time.January, 1)
	for i := range searchWindow {
		a.AddCustomHoliday(start.AddDate(0, 0, i), "blocked")
	}
	got := a.NextBusinessDay(start)
	if !got.IsZero() {
		t.Errorf("expected zero time on exhaustion, got %s", got.Format("2006-01-02"))
	}
}

func TestPreviousBusinessDay_ZeroOnExhaustion(t *testing.T) {
	a := New()
	start := d(2018, time.December, 31)
	for i := range searchWindow {
		a.AddCustomHoliday(start.AddDate(0, 0, -i), "blocked")
	}
	got := a.PreviousBusinessDay(start)
	if !got.IsZero() {
		t.Errorf("expected zero time on exhaustion, got %s", got.Format("2006-01-02"))
	}
}

func TestPreviousBusinessDay(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want time.Time
	}{
		{"Already business day (Friday)", d(2018, time.June, 8), d(2018, time.June, 8)},
		{"Saturday -> Friday", d(2018, time.June, 9), d(2018, time.June, 8)},
		{"Sunday -> Friday", d(2018, time.June, 10), d(2018, time.June, 8)},
		{"Monday holiday -> previous Friday", d(2018, time.January, 8), d(2018, time.January, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PreviousBusinessDay(tt.date)
			if got != tt.want {
				t.Errorf("PreviousBusinessDay(%s) = %s, want %s",
					tt.date.Format("2006-01-02"),
					got.Format("2006-01-02"),
					tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestBusinessDaysBetween(t *testing.T) {
	// 2018: Jun 11 = Mon
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"Mon-Fri no holidays", d(2018, time.June, 11), d(2018, time.June, 15), 5},
		{"Full week with weekend", d(2018, time.June, 11), d(2018, time.June, 17), 5},
		{"Same day business day", d(2018, time.June, 11), d(2018, time.June, 11), 1},
		{"Same day weekend", d(2018, time.June, 9), d(2018, time.June, 9), 0},
		{"Reversed range", d(2018, time.June, 15), d(2018, time.June, 11), 0},
		// GW 2018: 04/28(Sat), 04/29(Sun holiday), 04/30(Mon substitute), 05/01(Tue),
		// 05/02(Wed), 05/03(Thu holiday), 05/04(Fri holiday), 05/05(Sat holiday), 05/06(Sun)
		{"Golden Week", d(2018, time.April, 28), d(2018, time.May, 6), 2},
		{"June 2018", d(2018, time.June, 1), d(2018, time.June, 30), 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BusinessDaysBetween(tt.from, tt.to)
			if got != tt.want {
				t.Errorf("BusinessDaysBetween(%s, %s) = %d, want %d",
					tt.from.Format("2006-01-02"),
					tt.to.Format("2006-01-02"),
					got, tt.want)
			}
		})
	}
}

func TestBusinessDaysBetween_MatchesIsBusinessDay(t *testing.T) {
	a := New()
	a.AddCustomHoliday(d(2019, time.June, 12), "創立記念日")
	a.RemoveHoliday(d(2019, time.July, 15))

	from, to := d(2019, time.January, 1), d(2019, time.December, 31)
	want := 0
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if a.IsBusinessDay(day) {
			want++
		}
	}
	if got := a.BusinessDaysBetween(from, to); got != want {
		t.Errorf("BusinessDaysBetween(2019) = %d, want %d", got, want)
	}
}

func TestBusinessDay_EndOfCalendar(t *testing.T) {
	// 9999-12-31 is a Friday; 20:00 UTC that day is already year 10000 in JST.
	last := d(MaxYear, time.December, 31)
	beyond := time.Date(MaxYear, time.December, 31, 20, 0, 0, 0, time.UTC)

	if IsBusinessDay(beyond) {
		t.Error("a time past the last date should not be a business day")
	}
	if got := NextBusinessDay(beyond); !got.IsZero() {
		t.Errorf("NextBusinessDay past the last date = %s, want zero", got.Format("2006-01-02"))
	}
	if got := NextBusinessDay(last); got != last {
		t.Errorf("NextBusinessDay(%s) = %s", last.Format("2006-01-02"), got.Format("2006-01-02"))
	}
	if got := BusinessDaysBetween(last, beyond); got != 1 {
		t.Errorf("BusinessDaysBetween clamped to the last date = %d, want 1", got)
	}

	a := New()
	a.AddCustomHoliday(last, "大晦日")
	a.AddCustomHoliday(last.AddDate(0, 0, -1), "休み")
	// The search must not step past the last date.
	if got := a.NextBusinessDay(d(MaxYear, time.December, 30)); !got.IsZero() {
		t.Errorf("NextBusinessDay at the end = %s, want zero", got.Format("2006-01-02"))
	}
	if got := a.PreviousBusinessDay(last); got != d(MaxYear, time.December, 29) {
		t.Errorf("PreviousBusinessDay(%s) = %s, want 9999-12-29",
			last.Format("2006-01-02"), got.Format("2006-01-02"))
	}
}
