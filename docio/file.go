// SPDX-License-Identifier: MIT

package docio

import (
	"fmt"
	"os"
)

// File is a document parser bound to one named backend.
type File struct {
	name    string
	backend Backend
}

// New binds a File to the named backend, loading the plugin on demand
// (loading is idempotent, so repeated New calls share one instance).
//
// Errors: ErrPluginNotFound.
func New(name string) (*File, error) {
	if err := LoadPlugin(name); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	b, ok := backend(name)
	if !ok {
		// Unreachable after a successful LoadPlugin; kept as a guard.
		return nil, fmt.Errorf("New(%q): %w", name, ErrPluginNotFound)
	}

	return &File{name: name, backend: b}, nil
}

// Name returns the bound backend's name.
func (f *File) Name() string { return f.name }

// Parse reads and parses the document at path into a Node tree.
//
// Errors: ErrIO when the file cannot be opened or read, ErrParse when the
// backend rejects the content; both wrap the underlying cause.
func (f *File) Parse(path string) (*Node, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Parse %q: %w: %v", path, ErrIO, err)
	}
	defer r.Close()

	root, err := f.backend.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("Parse %q (%s): %w: %v", path, f.name, ErrParse, err)
	}

	return root, nil
}
