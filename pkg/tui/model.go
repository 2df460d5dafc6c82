// Package tui is the interactive dashboard: a calendar pane, the two day
// lists, the autosaving note pad, and the project gallery.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/selcan/hq/pkg/debounce"
	"github.com/selcan/hq/pkg/item"
	"github.com/selcan/hq/pkg/planner"
	"github.com/selcan/hq/pkg/store"
)

type pane int

const (
	paneCalendar pane = iota
	paneTasks
	paneShopping
	paneNote
	paneProjects
	paneCount
)

const noteQuietWindow = time.Second

type (
	storeChangedMsg struct{ collection string }
	noteSavedMsg    struct{}
	statusIdleMsg   struct{}
)

// Model is the bubbletea model for the dashboard.
type Model struct {
	p  store.Persistence
	pl *planner.Planner

	pane   pane
	cursor int

	adding bool
	input  textinput.Model

	note       textarea.Model
	noteStatus string
	saver      *debounce.Debouncer
	saved      chan struct{}

	items    []*item.Item
	projects []*item.Project

	events <-chan store.Event
	cancel context.CancelFunc

	width  int
	height int
	err    error
}

// New builds the dashboard over the given persistence.
func New(p store.Persistence) Model {
	input := textinput.New()
	input.Placeholder = "Add item for this day..."
	input.CharLimit = 200

	note := textarea.New()
	note.Placeholder = "What did you learn today?"
	note.SetValue(p.Note(store.LearningLog))

	m := Model{
		p:          p,
		pl:         planner.New(p, store.DailyTasks),
		input:      input,
		note:       note,
		noteStatus: "autosave ready",
		saver:      debounce.New(noteQuietWindow),
		saved:      make(chan struct{}, 1),
	}

	// The watcher lives for the whole program; hooked up here because Init
	// receives a copy of the model and could not keep the channel.
	ctx, cancel := context.WithCancel(context.Background())
	if events, err := p.Watch(ctx); err == nil {
		m.events = events
		m.cancel = cancel
	} else {
		cancel()
	}

	m.reload()
	return m
}

func (m *Model) reload() {
	m.items = m.p.LoadCollection(m.pl.Collection()).Items(m.pl.Selected())
	m.projects = m.p.Projects()
	if m.cursor >= len(m.activeList()) {
		m.cursor = max(0, len(m.activeList())-1)
	}
}

func (m Model) activeList() []*item.Item {
	if m.pane == paneProjects {
		// Projects scroll with the same cursor; length only.
		return make([]*item.Item, len(m.projects))
	}
	return m.items
}

func (m Model) Init() tea.Cmd {
	if m.events == nil {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, waitForChange(m.events))
}

func waitForChange(events <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-events
		if !ok {
			return nil
		}
		return storeChangedMsg{collection: evt.Collection}
	}
}

func (m Model) awaitSave() tea.Cmd {
	saved := m.saved
	return func() tea.Msg {
		<-saved
		return noteSavedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.note.SetWidth(min(60, msg.Width-4))
		return m, nil

	case storeChangedMsg:
		m.reload()
		if m.events == nil {
			return m, nil
		}
		return m, waitForChange(m.events)

	case noteSavedMsg:
		m.noteStatus = "saved ✓"
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg { return statusIdleMsg{} })

	case statusIdleMsg:
		if m.noteStatus == "saved ✓" {
			m.noteStatus = "autosave ready"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	if m.adding {
		return m.handleAddKey(msg)
	}
	if m.pane == paneNote {
		return m.handleNoteKey(msg)
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "tab":
		m.pane = (m.pane + 1) % paneCount
		m.cursor = 0
		if m.pane == paneNote {
			m.note.Focus()
		}
		return m, nil
	case "shift+tab":
		m.pane = (m.pane + paneCount - 1) % paneCount
		m.cursor = 0
		if m.pane == paneNote {
			m.note.Focus()
		}
		return m, nil
	}

	switch m.pane {
	case paneCalendar:
		return m.handleCalendarKey(msg)
	case paneTasks, paneShopping:
		return m.handleListKey(msg)
	case paneProjects:
		return m.handleProjectsKey(msg)
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	// Push any pending note write out before the program exits.
	m.saver.Flush()
	if m.cancel != nil {
		m.cancel()
	}
	return m, tea.Quit
}

func (m Model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.pl.ShiftDay(-1)
	case "right", "l":
		m.pl.ShiftDay(1)
	case "up", "k":
		m.pl.ShiftDay(-7)
	case "down", "j":
		m.pl.ShiftDay(7)
	case "[", "pgup":
		m.pl.PrevMonth()
	case "]", "pgdown":
		m.pl.NextMonth()
	case "t":
		m.pl.SelectDate(time.Now())
	case "enter":
		m.pane = paneTasks
	}
	m.cursor = 0
	m.reload()
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "a", "i":
		m.adding = true
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case " ", "enter":
		if m.cursor < len(m.items) {
			it := m.items[m.cursor]
			m.err = m.pl.Toggle(it.ID, !it.Completed)
			m.reload()
		}
	case "d", "backspace":
		if m.cursor < len(m.items) {
			m.err = m.pl.Remove(m.items[m.cursor].ID)
			m.reload()
		}
	case "s":
		m.switchCollection()
	}
	return m, nil
}

func (m *Model) switchCollection() {
	if m.pane == paneTasks {
		m.pane = paneShopping
		m.pl.SetCollection(store.ShoppingList)
	} else {
		m.pane = paneTasks
		m.pl.SetCollection(store.DailyTasks)
	}
	m.cursor = 0
	m.reload()
}

func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.adding = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		// Blank text is dropped silently; the input just closes.
		m.err = m.pl.Add(m.input.Value())
		m.adding = false
		m.input.Blur()
		m.reload()
		m.cursor = max(0, len(m.items)-1)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleNoteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEscape {
		m.note.Blur()
		m.pane = paneCalendar
		return m, nil
	}

	var cmd tea.Cmd
	m.note, cmd = m.note.Update(msg)

	m.noteStatus = "typing..."
	text := m.note.Value()
	p, saved := m.p, m.saved
	m.saver.Trigger(func() {
		if err := p.SetNote(store.LearningLog, text); err != nil {
			return
		}
		select {
		case saved <- struct{}{}:
		default:
		}
	})

	return m, tea.Batch(cmd, m.awaitSave())
}

func (m Model) handleProjectsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.projects)-1 {
			m.cursor++
		}
	case "d", "backspace":
		if m.cursor < len(m.projects) {
			m.err = m.p.DeleteProject(m.projects[m.cursor].ID)
			m.reload()
		}
	}
	return m, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
