// Package term implements the symbolic term algebra: integer terms
// over free symbolic constants, integer literals and arithmetic
// combinations of the two, and boolean terms over relational
// comparisons combined by and/or/not.
//
// Terms are immutable values; substitution under an environment always
// returns a new term rather than mutating in place, mirroring the
// teacher's homogeneous term tree in terex/terex.go.
package term

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'halfwaytree.term'.
func tracer() tracing.Trace {
	return tracing.Select("halfwaytree.term")
}
