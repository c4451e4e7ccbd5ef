// Package docio loads documents through name-selected pluggable backends.
//
// A backend parses a file into the generic Node tree; which backend runs is
// chosen by name at load time:
//
//	if err := docio.LoadPlugin("xml"); err != nil { ... }
//	f, err := docio.New("xml")
//	tree, err := f.Parse("model.xml")
//
// LoadPlugin is process-wide and idempotent per name; unknown names fail
// with ErrPluginNotFound. Doc returns a loaded backend's human-readable
// description. Built-in backends: "xml" and "yaml". Additional backends
// register through RegisterBuilder, typically from an init function.
//
// The registry is safe for concurrent use; Node trees are plain values with
// no retained resources.
package docio
