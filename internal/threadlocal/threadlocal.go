// Package threadlocal provides string-keyed storage scoped to the calling
// goroutine.
//
// Each goroutine observes only its own associations; no locking is needed
// because no two goroutines ever share a map. Storage is released
// automatically when the owning goroutine exits.
package threadlocal

import "github.com/timandy/routine"

var store = routine.NewThreadLocal[map[string]any]()

// Set associates value with key for the calling goroutine.
func Set[T any](key string, value T) {
	m := store.Get()
	if m == nil {
		m = make(map[string]any)
		store.Set(m)
	}
	m[key] = value
}

// Get returns the value associated with key by the calling goroutine.
// The second return is false when no value of type T is present.
func Get[T any](key string) (T, bool) {
	if m := store.Get(); m != nil {
		if v, ok := m[key].(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Delete removes the calling goroutine's association for key, if any.
func Delete(key string) {
	if m := store.Get(); m != nil {
		delete(m, key)
	}
}
