// Package cal provides the runner logic for the month view.
package cal

import (
	"context"
	"errors"
	"time"

	"github.com/selcan/hq/pkg/planner"
	"github.com/selcan/hq/pkg/printers"
	"github.com/selcan/hq/pkg/store"
)

// Cal prints a month grid with entry markers for the day collections.
type Cal struct {
	On     *time.Time
	Months int

	Persistence store.Persistence
}

func (n *Cal) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show calendar, no persistence")
	}

	pl := planner.New(n.Persistence, store.DailyTasks)
	if n.On != nil {
		pl.SelectDate(*n.On)
	}

	months := n.Months
	if months < 1 {
		months = 1
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	for i := 0; i < months; i++ {
		pp.Month(pl.Month(), pl.Days())
		pl.NextMonth()
	}
	return nil
}
