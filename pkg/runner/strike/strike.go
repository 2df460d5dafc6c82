// Package strike provides the runner logic for deleting day items.
package strike

import (
	"context"
	"errors"
	"time"

	"github.com/selcan/hq/pkg/dates"
	"github.com/selcan/hq/pkg/printers"
	"github.com/selcan/hq/pkg/store"
)

// Strike removes one item by id. Unknown ids are a no-op.
type Strike struct {
	ID         string
	Collection string
	On         *time.Time

	Persistence store.Persistence
}

func (n *Strike) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not strike, no persistence")
	}

	on := time.Now()
	if n.On != nil {
		on = *n.On
	}
	key := dates.KeyOf(on)

	if err := n.Persistence.Remove(n.Collection, key, n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title(key.Display())
	pp.Items(n.Persistence.LoadCollection(n.Collection).Items(key)...)
	return nil
}
