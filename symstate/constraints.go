package symstate

import (
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/sudouser2010/halfwaytree/term"
)

// ConstraintStore accumulates the boolean terms that make up a path
// condition, in the order they were added.
type ConstraintStore struct {
	constraints *arraylist.List // *term.BoolTerm
}

// NewConstraintStore returns an empty constraint store.
func NewConstraintStore() *ConstraintStore {
	return &ConstraintStore{constraints: arraylist.New()}
}

// Append adds a single constraint to the store.
func (cs *ConstraintStore) Append(c *term.BoolTerm) {
	cs.constraints.Add(c)
}

// AppendAll adds every constraint in cs2 to the store, in order.
func (cs *ConstraintStore) AppendAll(cs2 []*term.BoolTerm) {
	for _, c := range cs2 {
		cs.Append(c)
	}
}

// Len reports how many constraints are currently stored.
func (cs *ConstraintStore) Len() int {
	return cs.constraints.Size()
}

// Snapshot returns the accumulated constraints as a plain slice,
// without copying the underlying term values.
func (cs *ConstraintStore) Snapshot() []*term.BoolTerm {
	values := cs.constraints.Values()
	out := make([]*term.BoolTerm, len(values))
	for i, v := range values {
		out[i] = v.(*term.BoolTerm)
	}
	return out
}

// Clone makes an independent copy of the store, used when forking.
func (cs *ConstraintStore) Clone() *ConstraintStore {
	clone := NewConstraintStore()
	cs.constraints.Each(func(_ int, value interface{}) {
		clone.constraints.Add(value)
	})
	return clone
}

// Materialize returns the conjunction the solver will be asked to
// satisfy. Every stored constraint was already resolved against the
// environment in effect at the If that produced it (Fork builds atoms
// from already-substituted terms); Materialize must not substitute
// them again under the terminal's environment, since a variable
// concretized after the If that constrained it would then retroactively
// rewrite that If's frozen condition instead of leaving it as the
// branch recorded it.
func (cs *ConstraintStore) Materialize() []*term.BoolTerm {
	return cs.Snapshot()
}

// String renders the store as "c1 and c2 and c3", in accumulation order.
func (cs *ConstraintStore) String() string {
	parts := make([]string, 0, cs.Len())
	for _, c := range cs.Snapshot() {
		parts = append(parts, c.String())
	}
	if len(parts) == 0 {
		return "true"
	}
	return strings.Join(parts, " and ")
}
