// Package page holds the surfaces a lookup widget reads its input from and
// renders into.
package page

import "sync"

// Document is an in-memory set of elements addressed by id, each holding text.
// Unknown ids read as empty and are created on first write.
type Document struct {
	mu       sync.RWMutex
	elements map[string]string
	writes   int
}

func NewDocument(ids ...string) *Document {
	d := &Document{elements: make(map[string]string, len(ids))}
	for _, id := range ids {
		d.elements[id] = ""
	}
	return d
}

// SetInput fills an input element, the way a user typing into a form would.
func (d *Document) SetInput(id, value string) {
	d.mu.Lock()
	d.elements[id] = value
	d.mu.Unlock()
}

func (d *Document) InputValue(id string) string {
	return d.Text(id)
}

func (d *Document) SetOutput(id, value string) {
	d.mu.Lock()
	d.elements[id] = value
	d.writes++
	d.mu.Unlock()
}

func (d *Document) Text(id string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.elements[id]
}

// Writes counts SetOutput calls since creation.
func (d *Document) Writes() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.writes
}

// Snapshot copies every element's text.
func (d *Document) Snapshot() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[string]string, len(d.elements))
	for k, v := range d.elements {
		out[k] = v
	}
	return out
}
