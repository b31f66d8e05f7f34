package koyomi

import "time"

var japaneseWeekdays = [...]string{
	time.Sunday:    "日",
	time.Monday:    "月",
	time.Tuesday:   "火",
	time.Wednesday: "水",
	time.Thursday:  "木",
	time.Friday:    "金",
	time.Saturday:  "土",
}

// JapaneseWeekday returns the one-character Japanese name of w, e.g. "月" for Monday.
// It returns "" for values outside time.Sunday..time.Saturday.
func JapaneseWeekday(w time.Weekday) string {
	if w < time.Sunday || w > time.Saturday {
		return ""
	}
	return japaneseWeekdays[w]
}
