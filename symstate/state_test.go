package symstate

import "testing"

func TestEntryEdgeString(t *testing.T) {
	cases := map[EntryEdge]string{EntryNone: "", EntryTrue: "True", EntryFalse: "False"}
	for edge, want := range cases {
		if got := edge.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", edge, got, want)
		}
	}
}

func TestNewStateIsEmpty(t *testing.T) {
	s := NewState()
	if s.Constraints.Len() != 0 {
		t.Fatal("expected a fresh state to have no constraints")
	}
	if s.EntryEdge != EntryNone {
		t.Fatal("expected a fresh state to carry EntryNone")
	}
}

func TestStateCloneIsIndependent(t *testing.T) {
	s := NewState()
	s.Env.Bind("x", nil)
	clone := s.Clone()
	clone.Env.Bind("y", nil)
	if s.Env.Contains("y") {
		t.Fatal("expected original env untouched by clone's bind")
	}
	if !clone.Env.Contains("x") {
		t.Fatal("expected clone to carry over the original's bindings")
	}
}
