package symstate

import (
	"testing"

	"github.com/sudouser2010/halfwaytree/term"
)

func TestBindAndLookup(t *testing.T) {
	env := NewEnvironment()
	env.Bind("x", term.ConstInt(1))
	v, ok := env.Lookup("x")
	if !ok {
		t.Fatal("expected x to be bound")
	}
	if got, _ := v.IsConst(); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestContainsFalseBeforeBind(t *testing.T) {
	env := NewEnvironment()
	if env.Contains("x") {
		t.Fatal("expected x to be unbound")
	}
	env.Bind("x", term.FreeInt("x"))
	if !env.Contains("x") {
		t.Fatal("expected x to be bound")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	env := NewEnvironment()
	env.Bind("x", term.ConstInt(1))
	clone := env.Clone()
	clone.Bind("x", term.ConstInt(2))

	v, _ := env.Lookup("x")
	got, _ := v.IsConst()
	if got != 1 {
		t.Fatalf("expected original to stay at 1, got %d", got)
	}
	cv, _ := clone.Lookup("x")
	cgot, _ := cv.IsConst()
	if cgot != 2 {
		t.Fatalf("expected clone to be 2, got %d", cgot)
	}
}

func TestNamesPreservesBindingOrder(t *testing.T) {
	env := NewEnvironment()
	env.Bind("b", term.ConstInt(1))
	env.Bind("a", term.ConstInt(2))
	env.Bind("b", term.ConstInt(3))
	names := env.Names()
	if len(names) != 2 || names[0] != "b" || names[1] != "a" {
		t.Fatalf("expected [b a], got %v", names)
	}
}
