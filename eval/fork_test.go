package eval

import (
	"testing"

	"github.com/sudouser2010/halfwaytree/symstate"
	"github.com/sudouser2010/halfwaytree/term"
)

func TestForkBuildsIndependentTrueState(t *testing.T) {
	state := symstate.NewState()
	state.Env.Bind("x", term.FreeInt("x"))
	atom := term.Compare(term.Eq, term.FreeInt("x"), term.ConstInt(0))

	trueState := Fork(state, []*term.BoolTerm{atom})

	if trueState.Constraints.Len() != 1 {
		t.Fatalf("expected true branch to carry 1 constraint, got %d", trueState.Constraints.Len())
	}
	if state.Constraints.Len() != 1 {
		t.Fatalf("expected false branch (current) to carry the negated constraint, got %d", state.Constraints.Len())
	}
	if got, want := state.Constraints.Snapshot()[0].String(), "x != 0"; got != want {
		t.Fatalf("negated constraint = %q, want %q", got, want)
	}
	if got, want := trueState.Constraints.Snapshot()[0].String(), "x == 0"; got != want {
		t.Fatalf("true-branch constraint = %q, want %q", got, want)
	}
}

func TestForkClonesEnvironmentIndependently(t *testing.T) {
	state := symstate.NewState()
	state.Env.Bind("x", term.ConstInt(1))
	atom := term.Compare(term.Eq, term.FreeInt("x"), term.ConstInt(1))

	trueState := Fork(state, []*term.BoolTerm{atom})
	trueState.Env.Bind("x", term.ConstInt(99))

	v, _ := state.Env.Lookup("x")
	got, _ := v.IsConst()
	if got != 1 {
		t.Fatalf("expected the current state's env to stay at 1, got %d", got)
	}
}

func TestForkDoesNotMutateEntryEdge(t *testing.T) {
	state := symstate.NewState()
	state.EntryEdge = symstate.EntryTrue
	atom := term.Compare(term.Eq, term.FreeInt("x"), term.ConstInt(0))

	Fork(state, []*term.BoolTerm{atom})

	if state.EntryEdge != symstate.EntryTrue {
		t.Fatalf("expected Fork to leave current.EntryEdge untouched, got %v", state.EntryEdge)
	}
}
