package backup

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/selcan/hq/pkg/dates"
	"github.com/selcan/hq/pkg/item"
	"github.com/selcan/hq/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestBackupWritesDatedUnion(t *testing.T) {
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	key := dates.Key("2024-03-15")
	if err := p.Append(store.DailyTasks, key, item.New("Buy milk")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := p.AddProject(item.NewProject("Demo", "", "", "")); err != nil {
		t.Fatalf("add project: %v", err)
	}
	if err := p.SetNote(store.QuickNote, "hello"); err != nil {
		t.Fatalf("set note: %v", err)
	}

	out := t.TempDir()
	b := &Backup{
		OutDir:      out,
		Now:         time.Date(2024, time.March, 20, 14, 0, 0, 0, time.Local),
		Persistence: p,
	}
	if err := b.Do(context.Background()); err != nil {
		t.Fatalf("backup: %v", err)
	}

	path := filepath.Join(out, "hq_backup_2024-03-20.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal backup: %v", err)
	}
	for _, want := range []string{store.DailyTasks, store.ShoppingList, "projects", store.QuickNote, store.LearningLog} {
		if _, ok := doc[want]; !ok {
			t.Errorf("backup missing %q section", want)
		}
	}

	var tasks item.Collection
	if err := json.Unmarshal(doc[store.DailyTasks], &tasks); err != nil {
		t.Fatalf("unmarshal tasks: %v", err)
	}
	if len(tasks.Items(key)) != 1 || tasks.Items(key)[0].Text != "Buy milk" {
		t.Fatalf("unexpected tasks in backup: %+v", tasks)
	}
}
