package solve

import (
	"github.com/cnf/structhash"

	"github.com/sudouser2010/halfwaytree/term"
)

// CachingSolver memoizes Check results keyed by a structural hash of
// the rendered constraint conjunction, avoiding repeat search work
// when sibling paths happen to materialize identical constraints.
type CachingSolver struct {
	inner Solver
	cache map[string]Result
}

// NewCachingSolver wraps inner with a memoization layer.
func NewCachingSolver(inner Solver) *CachingSolver {
	return &CachingSolver{inner: inner, cache: make(map[string]Result)}
}

// Check is part of the Solver interface.
func (c *CachingSolver) Check(constraints []*term.BoolTerm) (Result, error) {
	rendered := make([]string, len(constraints))
	for i, t := range constraints {
		rendered[i] = t.String()
	}
	key, err := structhash.Hash(rendered, 1)
	if err != nil {
		tracer().Errorf("hashing constraint set failed, bypassing cache: %v", err)
		return c.inner.Check(constraints)
	}
	if result, ok := c.cache[key]; ok {
		tracer().Debugf("cache hit for %d constraint(s)", len(constraints))
		return result, nil
	}
	result, err := c.inner.Check(constraints)
	if err != nil {
		return Result{}, err
	}
	c.cache[key] = result
	return result, nil
}
