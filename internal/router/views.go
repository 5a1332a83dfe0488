package router

import (
	"fmt"
	"sync"
)

// ViewFactory builds the view for a matched route.
type ViewFactory[V any] func(m Match) V

// Views lazily constructs views by route name. The view of a KeepAlive
// route is reused while the route is revisited with the same path; every
// other visit gets a fresh view.
type Views[V any] struct {
	mu        sync.Mutex
	factories map[RouteName]ViewFactory[V]
	cache     map[RouteName]cachedView[V]
}

type cachedView[V any] struct {
	path string
	view V
}

func NewViews[V any]() *Views[V] {
	return &Views[V]{
		factories: make(map[RouteName]ViewFactory[V]),
		cache:     make(map[RouteName]cachedView[V]),
	}
}

// Register sets the factory for name, replacing any previous one and
// dropping its cached view.
func (v *Views[V]) Register(name RouteName, f ViewFactory[V]) *Views[V] {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.factories[name] = f
	delete(v.cache, name)
	return v
}

// View returns the view for m.
func (v *Views[V]) View(m Match) (V, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	name := m.Route.Name
	if c, ok := v.cache[name]; ok && c.path == m.Path {
		return c.view, nil
	}

	f, ok := v.factories[name]
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %s", ErrNoViewFactory, name)
	}

	view := f(m)
	if m.Route.Meta.KeepAlive {
		v.cache[name] = cachedView[V]{path: m.Path, view: view}
	}
	return view, nil
}

// Evict drops the cached view of name.
func (v *Views[V]) Evict(name RouteName) {
	v.mu.Lock()
	delete(v.cache, name)
	v.mu.Unlock()
}
