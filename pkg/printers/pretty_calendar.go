package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/selcan/hq/pkg/calendar"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a month grid with entry, today, and selection markers.
func (pp *PrettyPrint) Month(m calendar.Month, days []calendar.Day) {
	title := m.Title()
	pad := (width - len(title)) / 2
	if pad < 0 {
		pad = 0
	}

	t := color.New(color.Bold)
	h := color.New(color.Faint)
	_, _ = t.Println(strings.Repeat(" ", pad) + title)
	_, _ = h.Println("Su Mo Tu We Th Fr Sa")

	byDay := make(map[int]calendar.Day, len(days))
	for _, d := range days {
		byDay[d.Day] = d
	}

	plain := color.New()

	col := 0
	emit := func(s string, c *color.Color) {
		if col > 0 {
			fmt.Print(" ")
		}
		_, _ = c.Print(s)
		col++
		if col == 7 {
			fmt.Println("")
			col = 0
		}
	}

	for i := 0; i < m.StartWeekday(); i++ {
		emit("  ", plain)
	}
	for d := 1; d <= m.Days(); d++ {
		info := byDay[d]
		var attrs []color.Attribute
		if info.HasEntry {
			attrs = append(attrs, color.FgHiCyan, color.Bold)
		}
		if info.IsToday {
			attrs = append(attrs, color.ReverseVideo)
		}
		if info.IsSelected {
			attrs = append(attrs, color.Underline)
		}
		emit(fmt.Sprintf("%2d", d), color.New(attrs...))
	}
	if col != 0 {
		fmt.Println("")
	}
	fmt.Println("")
}
