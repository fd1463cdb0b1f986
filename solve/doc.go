// Package solve implements the solver adapter: given a conjunction of
// boolean terms over integer variables, decide satisfiability and, if
// satisfiable, produce a concrete model.
//
// No SMT library is wired here; IntRangeSolver is a bounded
// backtracking search over a symmetric integer range; a path whose
// only witnesses lie outside that range is reported unsatisfiable. See
// DESIGN.md for why this stays on the standard library.
package solve

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'halfwaytree.solve'.
func tracer() tracing.Trace {
	return tracing.Select("halfwaytree.solve")
}
