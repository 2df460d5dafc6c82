// Package complete provides the runner logic for marking items complete.
package complete

import (
	"context"
	"errors"
	"time"

	"github.com/selcan/hq/pkg/dates"
	"github.com/selcan/hq/pkg/printers"
	"github.com/selcan/hq/pkg/store"
)

// Complete sets the completed state of one item by id.
type Complete struct {
	ID         string
	Undo       bool
	Collection string
	On         *time.Time

	Persistence store.Persistence
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not complete, no persistence")
	}

	on := time.Now()
	if n.On != nil {
		on = *n.On
	}
	key := dates.KeyOf(on)

	if err := n.Persistence.Toggle(n.Collection, key, n.ID, !n.Undo); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title(key.Display())
	pp.Items(n.Persistence.LoadCollection(n.Collection).Items(key)...)
	return nil
}
