// Package store persists the planner's collections in a local diskv
// database: one key per named collection, JSON payloads, whole-collection
// overwrite on every write.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/peterbourgon/diskv/v3"

	"github.com/selcan/hq/pkg/dates"
	"github.com/selcan/hq/pkg/item"
)

// Built-in collection and note keys. These match what the dashboard has
// always stored, so an existing database keeps working.
const (
	DailyTasks   = "dailyTasks"
	ShoppingList = "shoppingList"
	QuickNote    = "quickNote"
	LearningLog  = "learningLog"

	projectsKey = "projects"
)

// DayCollections lists the date-keyed collections that mark calendar cells.
func DayCollections() []string {
	return []string{DailyTasks, ShoppingList}
}

// Persistence is the storage contract for the planner. Absent or malformed
// payloads read as empty values; mutations with unknown ids are silent
// no-ops. Every read-modify-write runs under one lock, so concurrent
// callers cannot interleave and lose updates.
type Persistence interface {
	LoadCollection(name string) item.Collection
	SaveCollection(name string, c item.Collection) error
	Append(name string, key dates.Key, it *item.Item) error
	Toggle(name string, key dates.Key, id string, completed bool) error
	Remove(name string, key dates.Key, id string) error
	HasEntries(key dates.Key, names ...string) bool

	Projects() []*item.Project
	AddProject(p *item.Project) error
	DeleteProject(id string) error

	Note(name string) string
	SetNote(name, text string) error

	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// flatTransform keeps every key as a single file directly under the base
// path.
func flatTransform(string) []string { return nil }

type persistence struct {
	d        *diskv.Diskv
	basePath string

	// Serializes read-modify-write cycles across goroutines.
	mu sync.Mutex
}

func (p *persistence) LoadCollection(name string) item.Collection {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadCollection(name)
}

// loadCollection must be called with the lock held.
func (p *persistence) loadCollection(name string) item.Collection {
	c := item.Collection{}
	data, err := p.d.Read(name)
	if err != nil {
		return c
	}
	if err := json.Unmarshal(data, &c); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %s\n", name, err)
		return item.Collection{}
	}
	c.Prune()
	return c
}

func (p *persistence) SaveCollection(name string, c item.Collection) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saveCollection(name, c)
}

// saveCollection must be called with the lock held.
func (p *persistence) saveCollection(name string, c item.Collection) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("store: collection name required")
	}
	if c == nil {
		c = item.Collection{}
	}
	c.Prune()
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", name, err)
	}
	return p.d.Write(name, data)
}

func (p *persistence) Append(name string, key dates.Key, it *item.Item) error {
	if it == nil || it.Text == "" {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	c := p.loadCollection(name)
	c.Append(key, it)
	return p.saveCollection(name, c)
}

func (p *persistence) Toggle(name string, key dates.Key, id string, completed bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	c := p.loadCollection(name)
	if !c.Toggle(key, id, completed) {
		return nil
	}
	return p.saveCollection(name, c)
}

func (p *persistence) Remove(name string, key dates.Key, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	c := p.loadCollection(name)
	if !c.Remove(key, id) {
		return nil
	}
	return p.saveCollection(name, c)
}

func (p *persistence) HasEntries(key dates.Key, names ...string) bool {
	if len(names) == 0 {
		names = DayCollections()
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, name := range names {
		if p.loadCollection(name).HasEntries(key) {
			return true
		}
	}
	return false
}

func (p *persistence) Projects() []*item.Project {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadProjects()
}

// loadProjects must be called with the lock held.
func (p *persistence) loadProjects() []*item.Project {
	data, err := p.d.Read(projectsKey)
	if err != nil {
		return []*item.Project{}
	}
	var list []*item.Project
	if err := json.Unmarshal(data, &list); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %s\n", projectsKey, err)
		return []*item.Project{}
	}
	return list
}

// saveProjects must be called with the lock held.
func (p *persistence) saveProjects(list []*item.Project) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", projectsKey, err)
	}
	return p.d.Write(projectsKey, data)
}

func (p *persistence) AddProject(proj *item.Project) error {
	if proj == nil || proj.Title == "" {
		return errors.New("store: project title required")
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.saveProjects(append(p.loadProjects(), proj))
}

func (p *persistence) DeleteProject(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	list := p.loadProjects()
	kept := make([]*item.Project, 0, len(list))
	for _, proj := range list {
		if proj.ID != id {
			kept = append(kept, proj)
		}
	}
	if len(kept) == len(list) {
		return nil
	}
	return p.saveProjects(kept)
}

func (p *persistence) Note(name string) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := p.d.Read(name)
	if err != nil {
		return ""
	}
	return string(data)
}

func (p *persistence) SetNote(name, text string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("store: note name required")
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.d.Write(name, []byte(text))
}
