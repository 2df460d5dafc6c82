// Package planner binds a stored collection to the calendar: it owns the
// visible month and selected day, applies list mutations, and derives the
// day flags the presentation layer redraws from.
package planner

import (
	"strings"
	"time"

	"github.com/selcan/hq/pkg/calendar"
	"github.com/selcan/hq/pkg/dates"
	"github.com/selcan/hq/pkg/item"
	"github.com/selcan/hq/pkg/store"
)

// Planner drives one named collection. The selection (month + day) lives
// only in memory and resets to today on every start.
type Planner struct {
	p          store.Persistence
	collection string

	// marks are the collections whose entries flag a calendar day; by
	// default every day-keyed collection, so the grid shows a marker when
	// any list has items for that day.
	marks []string

	month    calendar.Month
	selected dates.Key
}

// New creates a planner over the given collection, selecting today.
func New(p store.Persistence, collection string) *Planner {
	now := time.Now()
	return &Planner{
		p:          p,
		collection: collection,
		marks:      store.DayCollections(),
		month:      calendar.MonthOf(now),
		selected:   dates.KeyOf(now),
	}
}

// Collection returns the collection name this planner mutates.
func (pl *Planner) Collection() string {
	return pl.collection
}

// SetCollection retargets the planner without touching the selection.
func (pl *Planner) SetCollection(name string) {
	pl.collection = name
}

// Month returns the visible month.
func (pl *Planner) Month() calendar.Month {
	return pl.month
}

// Selected returns the selected day key.
func (pl *Planner) Selected() dates.Key {
	return pl.selected
}

// SelectDate sets the selected day and pulls the visible month to it.
// Selection never mutates persisted data.
func (pl *Planner) SelectDate(t time.Time) {
	pl.selected = dates.KeyOf(t)
	pl.month = calendar.MonthOf(t)
}

// SelectKey selects an existing day key. Invalid keys are ignored.
func (pl *Planner) SelectKey(k dates.Key) {
	t, err := dates.Parse(k)
	if err != nil {
		return
	}
	pl.SelectDate(t)
}

// ShiftDay moves the selection by days, following the month across
// boundaries.
func (pl *Planner) ShiftDay(days int) {
	t := pl.selected.Time()
	if t.IsZero() {
		return
	}
	pl.SelectDate(t.AddDate(0, 0, days))
}

// NextMonth advances the visible month. The selection stays put.
func (pl *Planner) NextMonth() {
	pl.month = pl.month.Next()
}

// PrevMonth rewinds the visible month.
func (pl *Planner) PrevMonth() {
	pl.month = pl.month.Prev()
}

// Items returns the selected day's list, in stored order.
func (pl *Planner) Items() []*item.Item {
	return pl.p.LoadCollection(pl.collection).Items(pl.selected)
}

// Add stores a new item for the selected day. Empty or whitespace-only text
// is a no-op; nothing is surfaced to the caller.
func (pl *Planner) Add(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return pl.p.Append(pl.collection, pl.selected, item.New(text))
}

// Toggle sets an item's completed state by id.
func (pl *Planner) Toggle(id string, completed bool) error {
	return pl.p.Toggle(pl.collection, pl.selected, id, completed)
}

// Remove deletes an item by id, pruning the day key when it empties.
func (pl *Planner) Remove(id string) error {
	return pl.p.Remove(pl.collection, pl.selected, id)
}

// HasEntries reports whether any marked collection has items for key.
func (pl *Planner) HasEntries(key dates.Key) bool {
	return pl.p.HasEntries(key, pl.marks...)
}

// Days derives the render flags for the visible month. Called after every
// mutation so the has-entries markers stay in sync with the lists.
func (pl *Planner) Days() []calendar.Day {
	cells := pl.month.Cells()
	days := make([]calendar.Day, 0, len(cells))
	for _, c := range cells {
		if c.Blank() {
			continue
		}
		days = append(days, calendar.Day{
			Day:        c.Day,
			HasEntry:   pl.HasEntries(c.Key),
			IsToday:    calendar.IsToday(c.Key),
			IsSelected: calendar.IsSelected(c.Key, pl.selected),
		})
	}
	return days
}
