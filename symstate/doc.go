// Package symstate holds the per-path mutable state a traversal carries
// forward: the variable environment mapping names to terms, and the
// path condition accumulated from the branch decisions taken so far.
//
// Both types are ordered maps/lists rather than bare Go maps, so that
// rendering and test-case extraction see bindings and constraints in
// the order they were introduced, mirroring the teacher's use of
// ordered collections (gods/maps/linkedhashmap, gods/lists/arraylist)
// in place of native containers wherever iteration order is observable.
package symstate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'halfwaytree.symstate'.
func tracer() tracing.Trace {
	return tracing.Select("halfwaytree.symstate")
}
