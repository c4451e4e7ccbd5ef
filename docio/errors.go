// SPDX-License-Identifier: MIT
// Package docio: sentinel error set, matched via errors.Is.

package docio

import "errors"

var (
	// ErrPluginNotFound is returned when no backend matches the requested
	// name (LoadPlugin, Doc, New).
	ErrPluginNotFound = errors.New("docio: plugin not found")

	// ErrParse is returned when a backend rejects malformed input.
	ErrParse = errors.New("docio: parse error")

	// ErrIO is returned when the document file cannot be read.
	ErrIO = errors.New("docio: io error")

	// ErrBadBackend indicates an invalid backend registration (empty name
	// or nil builder). Registration is programmer-driven, so this surfaces
	// immediately rather than at load time.
	ErrBadBackend = errors.New("docio: invalid backend registration")
)
