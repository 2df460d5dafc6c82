// Package get provides the runner logic for listing day items.
package get

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/selcan/hq/pkg/dates"
	"github.com/selcan/hq/pkg/printers"
	"github.com/selcan/hq/pkg/store"
)

// Get prints one day of a collection, or the whole collection with --all.
type Get struct {
	ShowID     bool
	All        bool
	Collection string
	On         *time.Time

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()

	c := n.Persistence.LoadCollection(n.Collection)

	if !n.All {
		on := time.Now()
		if n.On != nil {
			on = *n.On
		}
		key := dates.KeyOf(on)
		pp.TitleWithCount(key.Display(), len(c.Items(key)))
		pp.Items(c.Items(key)...)
		return nil
	}

	keys := make([]dates.Key, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	// Day keys sort lexicographically in calendar order.
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, key := range keys {
		pp.Title(key.Display())
		pp.Items(c.Items(key)...)
	}
	return nil
}
