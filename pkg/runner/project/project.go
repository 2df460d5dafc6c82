// Package project provides the runner logic for the project gallery.
package project

import (
	"context"
	"errors"

	"github.com/selcan/hq/pkg/item"
	"github.com/selcan/hq/pkg/printers"
	"github.com/selcan/hq/pkg/store"
)

// Add creates a new gallery project.
type Add struct {
	Title       string
	Description string
	Link        string
	Icon        string
	Secret      bool

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add project, no persistence")
	}

	p := item.NewProject(n.Title, n.Description, n.Link, n.Icon)
	p.Secret = n.Secret
	if err := n.Persistence.AddProject(p); err != nil {
		return err
	}

	return (&List{Persistence: n.Persistence}).Do(ctx)
}

// List prints the gallery. Secret projects are held back unless ShowSecret
// is set; the vault runner is the only caller that sets it.
type List struct {
	ShowID     bool
	ShowSecret bool

	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list projects, no persistence")
	}

	all := n.Persistence.Projects()
	visible := make([]*item.Project, 0, len(all))
	for _, p := range all {
		if p.Secret && !n.ShowSecret {
			continue
		}
		visible = append(visible, p)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("Projects", len(visible))
	pp.Projects(visible...)
	return nil
}

// Remove deletes a project by id. Unknown ids are a no-op.
type Remove struct {
	ID string

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove project, no persistence")
	}
	if err := n.Persistence.DeleteProject(n.ID); err != nil {
		return err
	}
	return (&List{ShowID: true, Persistence: n.Persistence}).Do(ctx)
}
