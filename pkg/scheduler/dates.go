package scheduler

import (
	"fmt"
	"time"
)

// DateLayout is the ISO-8601 calendar-date form used throughout the engine
const DateLayout = "2006-01-02"

// ExpandDateRange lists every calendar date in [start, end] inclusive.
// An inverted range or an unparseable bound yields an empty list; the
// engine degrades to a no-op result instead of faulting on caller error.
func ExpandDateRange(start, end string) []string {
	from, err := time.Parse(DateLayout, start)
	if err != nil {
		return nil
	}
	to, err := time.Parse(DateLayout, end)
	if err != nil {
		return nil
	}

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates
}

func prevDay(date string) string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		panic(fmt.Sprintf("bad slot date %q", date))
	}
	return d.AddDate(0, 0, -1).Format(DateLayout)
}

func nextDay(date string) string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		panic(fmt.Sprintf("bad slot date %q", date))
	}
	return d.AddDate(0, 0, 1).Format(DateLayout)
}

// weekOf keys a date by its ISO week, e.g. "2026-W09"
func weekOf(date string) string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		panic(fmt.Sprintf("bad slot date %q", date))
	}
	year, week := d.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}
