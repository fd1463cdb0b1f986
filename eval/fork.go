package eval

import (
	"github.com/sudouser2010/halfwaytree/symstate"
	"github.com/sudouser2010/halfwaytree/term"
)

// Fork builds the true-branch path state from an If's decomposed test
// atoms, and extends current's constraint store in place with the
// De Morgan negation for the false branch.
//
// The true branch gets an independent clone of the environment and
// constraints extended with the atoms themselves; the false branch
// reuses current's environment unchanged (the true-branch clone is the
// one that diverges). There is no explicit else subtree: the caller
// continues exploring current's body at the next statement, using
// current's mutated constraint store.
func Fork(current *symstate.State, atoms []*term.BoolTerm) *symstate.State {
	trueState := &symstate.State{
		Env:         current.Env.Clone(),
		Constraints: current.Constraints.Clone(),
		EntryEdge:   symstate.EntryTrue,
	}
	trueState.Constraints.AppendAll(atoms)

	current.Constraints.Append(term.Negate(atoms))

	return trueState
}
