// Package calendar holds the pure date math behind the monthly grid:
// the visible day set, post bucketing by calendar day, and month navigation.
package calendar

import (
	"time"

	"contentcal/models"
)

// MonthDays returns every day of ref's month, first through last, ascending.
// Each entry is midnight in ref's location.
func MonthDays(ref time.Time) []time.Time {
	year, month, _ := ref.Date()
	loc := ref.Location()

	days := make([]time.Time, 0, 31)
	for d := 1; d <= daysInMonth(year, month); d++ {
		days = append(days, time.Date(year, month, d, 0, 0, 0, 0, loc))
	}
	return days
}

// SameDay reports whether a and b fall on the same calendar day.
// Time-of-day is ignored.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// PostsForDay returns the posts scheduled on day. Posts with a zero
// scheduled date belong to no day.
func PostsForDay(day time.Time, posts []models.Post) []models.Post {
	var matched []models.Post
	for _, p := range posts {
		if p.ScheduledDate.IsZero() {
			continue
		}
		if SameDay(p.ScheduledDate, day) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Bucket groups posts into the given day cells.
func Bucket(days []time.Time, posts []models.Post) []models.CalendarDay {
	cells := make([]models.CalendarDay, len(days))
	for i, day := range days {
		cells[i] = models.CalendarDay{Date: day, Posts: PostsForDay(day, posts)}
	}
	return cells
}

// NextMonth moves ref forward one month, clamping the day-of-month when the
// target month is shorter (Jan 31 -> Feb 28/29).
func NextMonth(ref time.Time) time.Time {
	return addMonths(ref, 1)
}

// PrevMonth moves ref back one month, clamping like NextMonth.
func PrevMonth(ref time.Time) time.Time {
	return addMonths(ref, -1)
}

func addMonths(ref time.Time, delta int) time.Time {
	year, month, day := ref.Date()
	hour, min, sec := ref.Clock()

	// time.AddDate normalizes overflow (Jan 31 + 1 month = Mar 2/3), so the
	// target month length is checked before building the result.
	first := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, ref.Location())
	if max := daysInMonth(first.Year(), first.Month()); day > max {
		day = max
	}
	return time.Date(first.Year(), first.Month(), day, hour, min, sec, ref.Nanosecond(), ref.Location())
}

// Reschedule returns scheduled moved onto target's calendar day, keeping the
// original time-of-day. A zero scheduled date takes midnight on the target.
func Reschedule(scheduled, target time.Time) time.Time {
	year, month, day := target.Date()
	if scheduled.IsZero() {
		return time.Date(year, month, day, 0, 0, 0, 0, target.Location())
	}
	hour, min, sec := scheduled.Clock()
	return time.Date(year, month, day, hour, min, sec, scheduled.Nanosecond(), scheduled.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the following month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
