// Package add provides the runner logic for adding a day item.
package add

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/selcan/hq/pkg/dates"
	"github.com/selcan/hq/pkg/item"
	"github.com/selcan/hq/pkg/printers"
	"github.com/selcan/hq/pkg/store"
)

// Add appends a new item to the given collection for one day.
type Add struct {
	Collection string
	Message    string
	On         *time.Time

	Persistence store.Persistence
}

// Do stores the item and prints the day's list. Blank messages store
// nothing and print the unchanged list.
func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	on := time.Now()
	if n.On != nil {
		on = *n.On
	}
	key := dates.KeyOf(on)

	if strings.TrimSpace(n.Message) != "" {
		if err := n.Persistence.Append(n.Collection, key, item.New(n.Message)); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(key.Display())
	pp.Items(n.Persistence.LoadCollection(n.Collection).Items(key)...)
	return nil
}
