package item

import "github.com/selcan/hq/pkg/dates"

// Collection maps day keys to ordered item lists. A key with no items must
// not remain in the map; the calendar's has-entries markers rely on simple
// presence checks.
type Collection map[dates.Key][]*Item

// Items returns the list for key, or nil.
func (c Collection) Items(key dates.Key) []*Item {
	return c[key]
}

// Append adds it to the end of key's list.
func (c Collection) Append(key dates.Key, it *Item) {
	c[key] = append(c[key], it)
}

// Toggle sets the completed state of the item with the given id. Unknown ids
// are a no-op; the return reports whether anything changed.
func (c Collection) Toggle(key dates.Key, id string, completed bool) bool {
	for _, it := range c[key] {
		if it.ID == id {
			it.Completed = completed
			return true
		}
	}
	return false
}

// Remove deletes the item with the given id, dropping the key entirely when
// its list empties. Unknown ids are a no-op.
func (c Collection) Remove(key dates.Key, id string) bool {
	list := c[key]
	for i, it := range list {
		if it.ID == id {
			c[key] = append(list[:i], list[i+1:]...)
			if len(c[key]) == 0 {
				delete(c, key)
			}
			return true
		}
	}
	return false
}

// HasEntries reports whether key has at least one item.
func (c Collection) HasEntries(key dates.Key) bool {
	return len(c[key]) > 0
}

// Prune removes any keys holding empty lists. Load paths call this so a
// hand-edited or legacy payload cannot leave dangling entries behind.
func (c Collection) Prune() {
	for key, list := range c {
		if len(list) == 0 {
			delete(c, key)
		}
	}
}
