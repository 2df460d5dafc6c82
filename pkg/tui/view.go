package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/selcan/hq/pkg/calendar"
	"github.com/selcan/hq/pkg/store"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activePaneStyle = paneStyle.
			BorderForeground(lipgloss.Color("39"))

	headerStyle   = lipgloss.NewStyle().Faint(true)
	entryStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	todayStyle    = lipgloss.NewStyle().Reverse(true)
	selectedStyle = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("213"))

	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	doneStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	faintStyle  = lipgloss.NewStyle().Faint(true).Italic(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func (m Model) View() string {
	left := m.viewCalendar()
	right := m.viewList()

	var bottom string
	switch m.pane {
	case paneNote:
		bottom = m.viewNote()
	case paneProjects:
		bottom = m.viewProjects()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	sections := []string{
		titleStyle.Render("HQ") + " " + statusStyle.Render(m.pl.Selected().Display()),
		body,
	}
	if bottom != "" {
		sections = append(sections, bottom)
	}
	sections = append(sections, m.viewStatus())
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) viewCalendar() string {
	grid := calendar.Render(m.pl.Month(), m.pl.Days(), calendar.Options{
		HeaderStyle:   headerStyle,
		EmptyStyle:    lipgloss.NewStyle(),
		EntryStyle:    entryStyle,
		TodayStyle:    todayStyle,
		SelectedStyle: selectedStyle,
		ShowHeader:    true,
	})
	content := lipgloss.JoinVertical(lipgloss.Center, m.pl.Month().Title(), grid)
	return m.frame(paneCalendar).Render(content)
}

func (m Model) viewList() string {
	var b strings.Builder

	name := "Daily Tasks"
	if m.pl.Collection() == store.ShoppingList {
		name = "Shopping List"
	}
	b.WriteString(headerStyle.Render(name))
	b.WriteString("\n")

	if len(m.items) == 0 && !m.adding {
		b.WriteString(faintStyle.Render(" none"))
		b.WriteString("\n")
	}
	for i, it := range m.items {
		cursor := "  "
		if (m.pane == paneTasks || m.pane == paneShopping) && i == m.cursor && !m.adding {
			cursor = cursorStyle.Render("> ")
		}
		line := fmt.Sprintf("● %s", it.Text)
		if it.Completed {
			line = doneStyle.Render(fmt.Sprintf("✘ %s", it.Text))
		}
		b.WriteString(cursor + line + "\n")
	}

	if m.adding {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	active := m.pane == paneTasks || m.pane == paneShopping
	style := paneStyle
	if active {
		style = activePaneStyle
	}
	return style.Width(44).Render(b.String())
}

func (m Model) viewNote() string {
	content := headerStyle.Render("Learning Log") + "  " + statusStyle.Render(m.noteStatus) + "\n" + m.note.View()
	return m.frame(paneNote).Render(content)
}

func (m Model) viewProjects() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Projects"))
	b.WriteString("\n")
	if len(m.projects) == 0 {
		b.WriteString(faintStyle.Render(" none"))
		b.WriteString("\n")
	}
	for i, p := range m.projects {
		cursor := "  "
		if m.pane == paneProjects && i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		line := strings.TrimSpace(fmt.Sprintf("%s %s", p.Icon, p.Title))
		if p.Description != "" {
			line += faintStyle.Render(" — " + p.Description)
		}
		b.WriteString(cursor + line + "\n")
	}
	return m.frame(paneProjects).Render(b.String())
}

func (m Model) viewStatus() string {
	if m.err != nil {
		return errStyle.Render(m.err.Error())
	}
	help := "tab: pane • [ ]: month • arrows: day • a: add • space: toggle • d: delete • s: list • q: quit"
	return statusStyle.Render(help)
}

func (m Model) frame(p pane) lipgloss.Style {
	if m.pane == p {
		return activePaneStyle
	}
	return paneStyle
}
