// Package accordion tracks which bank section of the dashboard is expanded.
package accordion

import "sync"

// Controller holds the accordion state: either no section is expanded or
// exactly one is. The zero value has nothing expanded and is ready to use.
type Controller struct {
	mu       sync.Mutex
	expanded string
	open     bool
}

// Toggle collapses id if it is the expanded section, otherwise expands it and
// collapses the previous one in the same step.
func (c *Controller) Toggle(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open && c.expanded == id {
		c.expanded, c.open = "", false
		return
	}

	c.expanded, c.open = id, true
}

// Expanded returns the expanded section, if any.
func (c *Controller) Expanded() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.expanded, c.open
}

// IsExpanded reports whether id is the expanded section.
func (c *Controller) IsExpanded(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.open && c.expanded == id
}

// Forget collapses id if it is expanded. It is called when the bank is deleted.
func (c *Controller) Forget(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open && c.expanded == id {
		c.expanded, c.open = "", false
	}
}

// Row is one trackable list entry, keyed by the bank identifier.
type Row struct {
	Key      string `json:"key"`
	Expanded bool   `json:"expanded"`
}

// Rows returns one row per identifier, in the given order, with at most one
// row marked expanded.
func (c *Controller) Rows(ids []string) []Row {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([]Row, len(ids))
	for i, id := range ids {
		rows[i] = Row{Key: id, Expanded: c.open && c.expanded == id}
	}

	return rows
}
