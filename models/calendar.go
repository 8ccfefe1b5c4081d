package models

import "time"

// CalendarView selects how the calendar is rendered. Week and day are
// accepted but currently render the same grid as month.
type CalendarView string

const (
	ViewMonth CalendarView = "month"
	ViewWeek  CalendarView = "week"
	ViewDay   CalendarView = "day"
)

func (v CalendarView) Valid() bool {
	switch v {
	case ViewMonth, ViewWeek, ViewDay:
		return true
	}
	return false
}

// CalendarDay is one cell of the grid: a date and the posts scheduled on it.
type CalendarDay struct {
	Date  time.Time `json:"date"`
	Posts []Post    `json:"posts"`
}
