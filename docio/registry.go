// SPDX-License-Identifier: MIT
// Package docio: the process-wide backend registry.
// Builders describe what CAN be loaded; LoadPlugin instantiates a builder
// into the loaded set exactly once per name. All access is guarded by one
// RWMutex, so concurrent LoadPlugin/Doc/New calls are safe.

package docio

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// Backend parses documents of one format into the generic Node tree.
type Backend interface {
	// Parse reads one document and returns its root node.
	Parse(r io.Reader) (*Node, error)

	// Doc returns a short human-readable description of the backend.
	Doc() string
}

var (
	regMu    sync.RWMutex
	builders = map[string]func() Backend{
		"xml":  func() Backend { return xmlBackend{} },
		"yaml": func() Backend { return yamlBackend{} },
	}
	loaded = map[string]Backend{}
)

// RegisterBuilder makes a backend constructor available under name; it does
// not load it. Intended for init-time registration of external backends.
// Re-registering a name replaces the builder (last write wins) but never
// affects an already loaded instance.
//
// Errors: ErrBadBackend for an empty name or nil builder.
func RegisterBuilder(name string, builder func() Backend) error {
	if name == "" || builder == nil {
		return fmt.Errorf("RegisterBuilder(%q): %w", name, ErrBadBackend)
	}

	regMu.Lock()
	defer regMu.Unlock()
	builders[name] = builder

	return nil
}

// LoadPlugin instantiates the named backend into the loaded set.
// Idempotent per name: the second and later calls are no-ops.
//
// Errors: ErrPluginNotFound when no builder matches name.
func LoadPlugin(name string) error {
	regMu.Lock()
	defer regMu.Unlock()

	if _, ok := loaded[name]; ok {
		return nil
	}
	builder, ok := builders[name]
	if !ok {
		return fmt.Errorf("LoadPlugin(%q): %w", name, ErrPluginNotFound)
	}
	loaded[name] = builder()

	return nil
}

// Doc returns the loaded backend's description.
//
// Errors: ErrPluginNotFound when name has not been loaded.
func Doc(name string) (string, error) {
	regMu.RLock()
	defer regMu.RUnlock()

	b, ok := loaded[name]
	if !ok {
		return "", fmt.Errorf("Doc(%q): %w", name, ErrPluginNotFound)
	}

	return b.Doc(), nil
}

// Loaded returns the names of all loaded backends, sorted for determinism.
func Loaded() []string {
	regMu.RLock()
	defer regMu.RUnlock()

	names := make([]string, 0, len(loaded))
	for name := range loaded {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Available returns the names of all registered builders, sorted.
func Available() []string {
	regMu.RLock()
	defer regMu.RUnlock()

	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// backend fetches a loaded backend under the read lock.
func backend(name string) (Backend, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	b, ok := loaded[name]

	return b, ok
}
