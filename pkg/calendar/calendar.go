// Package calendar computes the month grid the planner navigates: which
// cells a month occupies, where today falls, and which days carry entries.
package calendar

import (
	"time"

	"github.com/selcan/hq/pkg/dates"
)

// Month is a (year, month) pair. Navigation is unbounded in both directions.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// First returns local midnight on the first of the month.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local)
}

// Next returns the following month, rolling the year at the December
// boundary. time.Date normalizes month 13 to January of the next year.
func (m Month) Next() Month {
	return MonthOf(time.Date(m.Year, m.Month+1, 1, 0, 0, 0, 0, time.Local))
}

// Prev returns the preceding month.
func (m Month) Prev() Month {
	return MonthOf(time.Date(m.Year, m.Month-1, 1, 0, 0, 0, 0, time.Local))
}

// Days returns the number of days in the month, via day 0 of the following
// month. Leap years follow the proleptic Gregorian calendar.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// StartWeekday is the weekday index of the first of the month, Sunday = 0.
func (m Month) StartWeekday() int {
	return int(m.First().Weekday())
}

// KeyOf returns the day key for the given day-of-month.
func (m Month) KeyOf(day int) dates.Key {
	return dates.KeyOf(time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.Local))
}

// Contains reports whether key falls inside the month.
func (m Month) Contains(key dates.Key) bool {
	t := key.Time()
	return !t.IsZero() && t.Year() == m.Year && t.Month() == m.Month
}

// Title renders e.g. "March 2024".
func (m Month) Title() string {
	return m.First().Format("January 2006")
}

// Cell is one slot in the month grid. Day 0 marks a leading blank before the
// first of the month.
type Cell struct {
	Day int
	Key dates.Key
}

// Blank reports whether the cell is a leading filler slot.
func (c Cell) Blank() bool {
	return c.Day == 0
}

// Cells produces the grid for the month: StartWeekday leading blanks, then
// one cell per day in order.
func (m Month) Cells() []Cell {
	days := m.Days()
	cells := make([]Cell, 0, m.StartWeekday()+days)
	for i := 0; i < m.StartWeekday(); i++ {
		cells = append(cells, Cell{})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{Day: d, Key: m.KeyOf(d)})
	}
	return cells
}

// IsToday reports whether key is the current local day.
func IsToday(key dates.Key) bool {
	return key == dates.Today()
}

// IsSelected reports whether key matches the selected day.
func IsSelected(key, selected dates.Key) bool {
	return key != "" && key == selected
}
