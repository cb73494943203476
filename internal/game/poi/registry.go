// Package poi holds the points-of-interest registry: named informational
// payloads shown when the rig comes near a same-named scene node.
package poi

import (
	"github.com/elliotchance/orderedmap/v2"
)

// Payload is the content displayed for a point of interest.
type Payload struct {
	Title string
	Body  string
}

// Registry maps POI names to payloads. Lookup is O(1); iteration follows
// insertion order, which is the order of the source document.
type Registry struct {
	entries *orderedmap.OrderedMap[string, Payload]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: orderedmap.NewOrderedMap[string, Payload]()}
}

// Add inserts or replaces a payload. Replacing keeps the original position.
func (r *Registry) Add(name string, p Payload) {
	r.entries.Set(name, p)
}

// Get returns the payload for name.
func (r *Registry) Get(name string) (Payload, bool) {
	if r == nil {
		return Payload{}, false
	}
	return r.entries.Get(name)
}

// Len returns the number of POIs. A nil registry is empty.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return r.entries.Len()
}

// Each calls fn for every POI in registry order until fn returns false.
func (r *Registry) Each(fn func(name string, p Payload) bool) {
	if r == nil {
		return
	}
	for el := r.entries.Front(); el != nil; el = el.Next() {
		if !fn(el.Key, el.Value) {
			return
		}
	}
}

// Names returns POI names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.Len())
	r.Each(func(name string, _ Payload) bool {
		names = append(names, name)
		return true
	})
	return names
}
