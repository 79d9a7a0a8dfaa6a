package store

import "time"

// dateWindow returns the half-open comparison bounds for a calendar-day
// window of [today, today+days] inclusive. Date columns hold either plain
// dates or full timestamps; comparing against day-granularity strings with
// `>= lo AND < hi` keeps both forms inside the inclusive window.
func dateWindow(today time.Time, days int) (lo, hi string) {
	lo = today.Format("2006-01-02")
	hi = today.AddDate(0, 0, days+1).Format("2006-01-02")
	return lo, hi
}
