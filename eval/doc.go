// Package eval evaluates AST expressions into term-package symbolic
// terms against a symstate.Environment, dispatches statements to their
// effect on environment and constraints, and decomposes an If's test
// into the atomic comparisons the branch forker needs.
package eval

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'halfwaytree.eval'.
func tracer() tracing.Trace {
	return tracing.Select("halfwaytree.eval")
}
