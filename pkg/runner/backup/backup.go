// Package backup provides the runner logic for the JSON export.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/selcan/hq/pkg/dates"
	"github.com/selcan/hq/pkg/store"
)

// Backup serializes every stored collection into one JSON document named
// with the current date. Export only; there is no import path.
type Backup struct {
	OutDir string
	Now    time.Time

	Persistence store.Persistence
}

func (n *Backup) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not backup, no persistence")
	}

	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}

	doc := map[string]any{
		store.DailyTasks:   n.Persistence.LoadCollection(store.DailyTasks),
		store.ShoppingList: n.Persistence.LoadCollection(store.ShoppingList),
		"projects":         n.Persistence.Projects(),
		store.QuickNote:    n.Persistence.Note(store.QuickNote),
		store.LearningLog:  n.Persistence.Note(store.LearningLog),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("backup: marshal: %w", err)
	}

	name := fmt.Sprintf("hq_backup_%s.json", dates.KeyOf(now))
	path := filepath.Join(n.OutDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("backup: write %s: %w", path, err)
	}

	fmt.Println(path)
	return nil
}
