// Package ui provides the runner that launches the dashboard.
package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/selcan/hq/pkg/store"
	"github.com/selcan/hq/pkg/tui"
)

// UI runs the interactive dashboard until the user quits.
type UI struct {
	Persistence store.Persistence
}

func (n *UI) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not open the dashboard, no persistence")
	}

	p := tea.NewProgram(tui.New(n.Persistence), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
