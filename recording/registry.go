package recording

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/gogpu/svg"
)

// BackendFactory creates a new backend instance. Document options are
// forwarded to backends that produce svg documents; others may ignore
// them.
type BackendFactory func(opts ...svg.Option) Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register makes a backend factory available under name. It is called
// from init() in backend packages, following the database/sql driver
// pattern:
//
//	func init() {
//	    recording.Register("svg", func(opts ...svg.Option) recording.Backend {
//	        return NewBackend(opts...)
//	    })
//	}
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	backends[name] = factory
	svg.Logger().Debug("recording: backend registered", "name", name)
}

// Unregister removes a backend from the registry. It is meant for tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a new backend instance by name.
//
//	import _ "github.com/gogpu/svg/recording/backends/svgdoc"
//
//	backend, err := recording.NewBackend("svg", svg.WithIDPrefix("fig1-"))
//
// The error for an unknown name hints at a missing blank import.
func NewBackend(name string, opts ...svg.Option) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown backend %q (forgotten import?)", name)
	}
	return factory(opts...), nil
}

// MustBackend is like NewBackend but panics on error.
func MustBackend(name string, opts ...svg.Option) Backend {
	b, err := NewBackend(name, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return slices.Sorted(maps.Keys(backends))
}

// IsRegistered reports whether a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
