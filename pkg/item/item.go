// Package item defines the things the planner stores: checkable day items
// and the project gallery entries.
package item

import (
	"strings"

	"github.com/google/uuid"
)

// Item is a single checkable entry in a day list. Items are identified by a
// generated id rather than their list position, so a stale view can never
// toggle or delete the wrong entry.
type Item struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Created   Timestamp `json:"created,omitempty"`
}

// New creates an item from user text. The text is trimmed; callers are
// expected to reject empty results before storing.
func New(text string) *Item {
	return &Item{
		ID:      uuid.NewString(),
		Text:    strings.TrimSpace(text),
		Created: Now(),
	}
}

// Project is one card in the project gallery. Projects are created whole and
// deleted by id, never edited in place.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"desc,omitempty"`
	Link        string    `json:"link,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	Secret      bool      `json:"secret,omitempty"`
	Created     Timestamp `json:"created,omitempty"`
}

// NewProject creates a gallery project with a generated id.
func NewProject(title, description, link, icon string) *Project {
	return &Project{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Link:        strings.TrimSpace(link),
		Icon:        strings.TrimSpace(icon),
		Created:     Now(),
	}
}
