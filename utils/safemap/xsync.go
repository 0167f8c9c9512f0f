package safemap

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// Map is a thread-safe map.
type Map[K comparable, V any] struct {
	internal *xsync.MapOf[K, V]
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		internal: xsync.NewMapOf[K, V](),
	}
}

func (sm *Map[K, V]) Get(key K) (V, bool) {
	return sm.internal.Load(key)
}

func (sm *Map[K, V]) Set(key K, value V) {
	sm.internal.Store(key, value)
}

// GetOrCompute returns the value for key, computing and storing it when
// absent. The second return reports whether the value already existed.
func (sm *Map[K, V]) GetOrCompute(key K, valueFn func() V) (actual V, loaded bool) {
	return sm.internal.LoadOrCompute(key, valueFn)
}

func (sm *Map[K, V]) Del(key K) {
	sm.internal.Delete(key)
}

func (sm *Map[K, V]) Len() int {
	return sm.internal.Size()
}

func (sm *Map[K, V]) Clear() {
	sm.internal.Clear()
}
