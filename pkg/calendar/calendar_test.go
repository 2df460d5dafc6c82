package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/selcan/hq/pkg/dates"
)

func TestCellsShape(t *testing.T) {
	tests := []struct {
		name   string
		month  Month
		blanks int
		days   int
	}{
		{"jan 2024 starts monday", Month{2024, time.January}, 1, 31},
		{"feb 2024 leap", Month{2024, time.February}, 4, 29},
		{"feb 2023 non-leap", Month{2023, time.February}, 3, 28},
		{"mar 2024 starts friday", Month{2024, time.March}, 5, 31},
		{"sep 2024 starts sunday", Month{2024, time.September}, 0, 30},
		{"feb 2000 century leap", Month{2000, time.February}, 2, 29},
		{"feb 1900 not leap", Month{1900, time.February}, 4, 28},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cells := tc.month.Cells()
			blanks := 0
			for _, c := range cells {
				if c.Blank() {
					blanks++
				} else {
					break
				}
			}
			if blanks != tc.blanks {
				t.Errorf("leading blanks = %d, want %d", blanks, tc.blanks)
			}
			if got := len(cells) - blanks; got != tc.days {
				t.Errorf("day cells = %d, want %d", got, tc.days)
			}
			if tc.month.Days() != tc.days {
				t.Errorf("Days() = %d, want %d", tc.month.Days(), tc.days)
			}
		})
	}
}

func TestCellKeys(t *testing.T) {
	m := Month{2024, time.March}
	cells := m.Cells()
	last := cells[len(cells)-1]
	if last.Key != dates.Key("2024-03-31") {
		t.Fatalf("last cell key = %q", last.Key)
	}
	if !m.Contains(last.Key) {
		t.Fatal("month should contain its own day keys")
	}
	if m.Contains(dates.Key("2024-04-01")) {
		t.Fatal("month should not contain a neighboring day")
	}
}

func TestMonthNavigation(t *testing.T) {
	m := Month{2024, time.January}
	if next := m.Next(); next != (Month{2024, time.February}) {
		t.Fatalf("Next = %+v", next)
	}
	if prev := m.Prev(); prev != (Month{2023, time.December}) {
		t.Fatalf("Prev = %+v", prev)
	}

	m = Month{2023, time.May}
	for i := 0; i < 12; i++ {
		m = m.Next()
	}
	if m != (Month{2024, time.May}) {
		t.Fatalf("twelve Next calls from 2023-05 gave %+v", m)
	}

	m = Month{2024, time.January}
	if m.Prev().Next() != m {
		t.Fatal("Prev then Next should round trip")
	}
}

func TestIsTodayIsSelected(t *testing.T) {
	if !IsToday(dates.Today()) {
		t.Error("today should be today")
	}
	if IsToday(dates.Key("1999-01-01")) {
		t.Error("1999-01-01 should not be today")
	}
	if !IsSelected(dates.Key("2024-03-15"), dates.Key("2024-03-15")) {
		t.Error("equal keys should be selected")
	}
	if IsSelected(dates.Key(""), dates.Key("")) {
		t.Error("blank cells are never selected")
	}
}

func TestRenderRowCount(t *testing.T) {
	m := Month{2024, time.March} // 5 blanks + 31 days = 36 cells = 6 rows
	out := Render(m, nil, Options{ShowHeader: true})
	if rows := len(strings.Split(out, "\n")); rows != 7 {
		t.Fatalf("expected header + 6 rows, got %d lines", rows)
	}
	if !strings.Contains(out, "15") {
		t.Fatal("rendered month should include day 15")
	}
}
