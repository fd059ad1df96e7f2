// Package syncmap provides a typed wrapper around sync.Map.
package syncmap

import "sync"

// Map is a sync.Map with typed keys and values. The zero value is ready for use.
type Map[K comparable, V any] struct {
	m sync.Map
}

// LoadOrStore returns the existing value for k if present. Otherwise it
// stores v and returns it. loaded reports whether the value was present.
func (m *Map[K, V]) LoadOrStore(k K, v V) (actual V, loaded bool) {
	vAny, loaded := m.m.LoadOrStore(k, v)
	return vAny.(V), loaded
}

// Load returns the value stored for k, if any.
func (m *Map[K, V]) Load(k K) (V, bool) {
	vAny, ok := m.m.Load(k)
	if !ok {
		return *new(V), false
	}
	return vAny.(V), true
}

// ToMap returns a snapshot of the map's contents.
func (m *Map[K, V]) ToMap() map[K]V {
	ret := map[K]V{}
	m.m.Range(func(k, v any) bool {
		ret[k.(K)] = v.(V)
		return true
	})
	return ret
}
