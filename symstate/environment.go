package symstate

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/sudouser2010/halfwaytree/term"
)

// Environment binds variable names to terms along a single path. It
// satisfies term.Env, so terms can be substituted directly against it.
type Environment struct {
	bindings *linkedhashmap.Map // string -> *term.IntTerm
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{bindings: linkedhashmap.New()}
}

// Bind assigns t to name, overwriting any prior binding. Rebinding an
// already-bound name with a concrete term is how a variable goes from
// symbolic back to concrete.
func (e *Environment) Bind(name string, t *term.IntTerm) {
	e.bindings.Put(name, t)
	tracer().Debugf("bound %s = %s", name, t)
}

// Lookup finds the term currently bound to name.
func (e *Environment) Lookup(name string) (*term.IntTerm, bool) {
	v, found := e.bindings.Get(name)
	if !found {
		return nil, false
	}
	return v.(*term.IntTerm), true
}

// Contains reports whether name has ever been bound.
func (e *Environment) Contains(name string) bool {
	_, found := e.bindings.Get(name)
	return found
}

// Clone makes an independent copy of the environment, used when a
// branch forks state and each fork must evolve separately from there on.
func (e *Environment) Clone() *Environment {
	clone := NewEnvironment()
	it := e.bindings.Iterator()
	for it.Next() {
		clone.bindings.Put(it.Key(), it.Value())
	}
	return clone
}

// Names returns the bound variable names in binding order.
func (e *Environment) Names() []string {
	keys := e.bindings.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// String renders the environment as "x=1, y=(x + 1)", in binding order.
func (e *Environment) String() string {
	var b strings.Builder
	it := e.bindings.Iterator()
	first := true
	for it.Next() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s=%s", it.Key(), it.Value())
	}
	return b.String()
}
