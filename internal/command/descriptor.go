// Package command provides the command registry: the immutable mapping
// from command identifier to dispatch metadata, built once at startup
// from the builtin table plus an optional TOML overlay.
package command

// Platform is a bitmask of platform classes a command applies to.
type Platform uint8

// Platform classes.
const (
	// PlatformWML covers Windows, Mac, and Linux desktop builds.
	PlatformWML Platform = 1 << iota
	PlatformChromeOS
	PlatformAndroid
)

// PlatformAll matches every platform class.
const PlatformAll = PlatformWML | PlatformChromeOS | PlatformAndroid

// Matches reports whether the filter admits the current platform.
func (p Platform) Matches(current Platform) bool {
	return p&current != 0
}

// NodeType describes a class of structural element targeted by jump
// commands and list widgets: a predicate name resolved by the DOM layer
// plus the directional error messages spoken when no such element exists.
type NodeType struct {
	// Name is the node-type identifier (e.g., "heading", "link").
	Name string

	// Predicate names the boolean node predicate used to match elements.
	Predicate string

	// ForwardError is spoken when a forward search finds nothing even
	// after wrapping.
	ForwardError string

	// BackwardError is the backward-search counterpart.
	BackwardError string
}

// Descriptor is the static dispatch metadata for one command identifier.
// Descriptors are read-only after the registry is built; per-invocation
// overrides live in the execution context, never here.
type Descriptor struct {
	// ID is the command identifier.
	ID string

	// Forward and Backward set directionality before dispatch.
	// At most one may be true.
	Forward  bool
	Backward bool

	// SkipInput gates the command off while focus is inside a text input.
	SkipInput bool

	// AllowEvents leaves the engine's event listeners live during
	// execution instead of entering the suspension scope.
	AllowEvents bool

	// DisallowContinuation stops in-progress continuous reading before
	// and after the command runs.
	DisallowContinuation bool

	// Announce finalizes the navigation with a spoken description of the
	// new position after the command completes.
	Announce bool

	// DoDefault permits the browser's native handling to run as well.
	DoDefault bool

	// FindNext, when set, rewrites the command to a generic find over
	// this node type.
	FindNext *NodeType

	// NodeList, when set, names the node type shown by a list widget.
	NodeList *NodeType

	// Platform restricts the command to a platform class.
	Platform Platform

	// Category groups commands for help and list displays.
	Category string

	// Doc is a one-line description for keyboard-help surfaces.
	Doc string
}

// Directional reports whether the descriptor sets a direction.
func (d Descriptor) Directional() bool {
	return d.Forward || d.Backward
}
