// Package cursor addresses a position within a program's statement
// tree as a sequence of steps: an integer index into a body, or a
// descent into a conditional's then-branch. A cursor is immutable;
// every navigation operation returns a new cursor rather than mutating
// the receiver, so that sibling recursions in the explorer can each
// hold their own cursor safely.
package cursor

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'halfwaytree.cursor'.
func tracer() tracing.Trace {
	return tracing.Select("halfwaytree.cursor")
}
