// Package printers renders planner state for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/selcan/hq/pkg/item"
)

const (
	openGlyph = "●"
	doneGlyph = "✘"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// Items prints one day list, completed items struck and faint.
func (pp *PrettyPrint) Items(items ...*item.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, it := range items {
		if pp.ShowID {
			_, _ = y.Print(it.ID)
			if pad := len(spacing) - len(it.ID); pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			}
		}
		if it.Completed {
			_, _ = t.Printf("%s ", doneGlyph)
			_, _ = done.Println(it.Text)
		} else {
			_, _ = t.Printf("%s %s\n", openGlyph, it.Text)
		}
	}
	_, _ = t.Println("")
}

// Projects prints the gallery as a table.
func (pp *PrettyPrint) Projects(projects ...*item.Project) {
	if len(projects) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	b := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	if pp.ShowID {
		tbl.AddRow(b.Sprint("ID"), b.Sprint(""), b.Sprint("Title"), b.Sprint("Description"), b.Sprint("Link"))
		for _, p := range projects {
			tbl.AddRow(p.ID, p.Icon, p.Title, p.Description, p.Link)
		}
	} else {
		tbl.AddRow(b.Sprint(""), b.Sprint("Title"), b.Sprint("Description"), b.Sprint("Link"))
		for _, p := range projects {
			tbl.AddRow(p.Icon, p.Title, p.Description, p.Link)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}
