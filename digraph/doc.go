// Package digraph builds the labelled state-space graph emitted by a
// traversal, and renders a console report of the per-path test cases
// collected along the way.
//
// Nodes may be referenced by id (an edge added, or an attribute
// updated) before the node itself is declared, and Renderer
// implementations must tolerate that ordering. The explorer in the
// root package declares each node before it explores the statements
// below it, an If's then-branch included.
package digraph

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'halfwaytree.digraph'.
func tracer() tracing.Trace {
	return tracing.Select("halfwaytree.digraph")
}
