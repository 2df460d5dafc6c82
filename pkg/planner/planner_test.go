package planner

import (
	"testing"
	"time"

	"github.com/selcan/hq/pkg/calendar"
	"github.com/selcan/hq/pkg/dates"
	"github.com/selcan/hq/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func newPlanner(t *testing.T) *Planner {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return New(p, store.DailyTasks)
}

func TestStartsOnToday(t *testing.T) {
	pl := newPlanner(t)
	if pl.Selected() != dates.Today() {
		t.Fatalf("selected = %q, want today", pl.Selected())
	}
	if pl.Month() != calendar.MonthOf(time.Now()) {
		t.Fatalf("month = %+v, want current month", pl.Month())
	}
}

func TestAddToggleRemoveScenario(t *testing.T) {
	pl := newPlanner(t)
	pl.SelectDate(time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local))

	if err := pl.Add("Buy milk"); err != nil {
		t.Fatalf("add: %v", err)
	}
	items := pl.Items()
	if len(items) != 1 || items[0].Text != "Buy milk" || items[0].Completed {
		t.Fatalf("unexpected items after add: %+v", items)
	}
	if !pl.HasEntries(dates.Key("2024-03-15")) {
		t.Fatal("day should have entries after add")
	}

	if err := pl.Toggle(items[0].ID, true); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !pl.Items()[0].Completed {
		t.Fatal("toggle should persist")
	}

	if err := pl.Remove(items[0].ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(pl.Items()) != 0 {
		t.Fatal("items should be empty after remove")
	}
	if pl.HasEntries(dates.Key("2024-03-15")) {
		t.Fatal("day marker should clear when the list empties")
	}
}

func TestAddBlankTextIsNoop(t *testing.T) {
	pl := newPlanner(t)
	for _, text := range []string{"", "   ", "\t\n"} {
		if err := pl.Add(text); err != nil {
			t.Fatalf("add %q: %v", text, err)
		}
	}
	if len(pl.Items()) != 0 {
		t.Fatalf("blank adds should store nothing, got %+v", pl.Items())
	}
}

func TestMonthNavigationDoesNotMoveSelection(t *testing.T) {
	pl := newPlanner(t)
	pl.SelectDate(time.Date(2023, time.May, 20, 0, 0, 0, 0, time.Local))

	for i := 0; i < 12; i++ {
		pl.NextMonth()
	}
	if pl.Month() != (calendar.Month{Year: 2024, Month: time.May}) {
		t.Fatalf("month after 12 steps = %+v", pl.Month())
	}
	if pl.Selected() != dates.Key("2023-05-20") {
		t.Fatalf("selection moved to %q", pl.Selected())
	}

	pl.PrevMonth()
	if pl.Month() != (calendar.Month{Year: 2024, Month: time.April}) {
		t.Fatalf("month after prev = %+v", pl.Month())
	}
}

func TestShiftDayCrossesMonthBoundary(t *testing.T) {
	pl := newPlanner(t)
	pl.SelectDate(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.Local))
	pl.ShiftDay(1)
	if pl.Selected() != dates.Key("2024-02-01") {
		t.Fatalf("selected = %q", pl.Selected())
	}
	if pl.Month() != (calendar.Month{Year: 2024, Month: time.February}) {
		t.Fatalf("month should follow the selection, got %+v", pl.Month())
	}
	pl.ShiftDay(-1)
	if pl.Selected() != dates.Key("2024-01-31") {
		t.Fatalf("selected = %q", pl.Selected())
	}
}

func TestDaysFlagsSelectedAndEntries(t *testing.T) {
	pl := newPlanner(t)
	pl.SelectDate(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local))
	if err := pl.Add("something"); err != nil {
		t.Fatalf("add: %v", err)
	}

	days := pl.Days()
	if len(days) != 31 {
		t.Fatalf("march should have 31 day flags, got %d", len(days))
	}
	d15 := days[14]
	if d15.Day != 15 || !d15.HasEntry || !d15.IsSelected {
		t.Fatalf("unexpected flags for the 15th: %+v", d15)
	}
	if days[13].HasEntry || days[13].IsSelected {
		t.Fatalf("the 14th should be unflagged: %+v", days[13])
	}
}

func TestEntriesFromSiblingCollectionMarkTheDay(t *testing.T) {
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	shopping := New(p, store.ShoppingList)
	shopping.SelectDate(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local))
	if err := shopping.Add("Eggs"); err != nil {
		t.Fatalf("add: %v", err)
	}

	tasks := New(p, store.DailyTasks)
	if !tasks.HasEntries(dates.Key("2024-03-15")) {
		t.Fatal("task planner should mark days that only have shopping entries")
	}
}
