// Package note provides the runner logic for the free-text notes.
package note

import (
	"context"
	"errors"
	"fmt"

	"github.com/selcan/hq/pkg/printers"
	"github.com/selcan/hq/pkg/store"
)

// Note reads or replaces one named note.
type Note struct {
	Name string
	Text *string // nil means print

	Persistence store.Persistence
}

func (n *Note) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not note, no persistence")
	}

	if n.Text != nil {
		return n.Persistence.SetNote(n.Name, *n.Text)
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(n.Name)
	fmt.Println(n.Persistence.Note(n.Name))
	return nil
}
