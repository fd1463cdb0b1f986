package halfwaytree

import (
	"testing"

	"github.com/sudouser2010/halfwaytree/ast"
	"github.com/sudouser2010/halfwaytree/config"
	"github.com/sudouser2010/halfwaytree/digraph"
)

// run parses src, appends the synthetic terminal, and explores it with
// visuals disabled so tests never touch stdout.
func run(t *testing.T, src string) (*Node, []digraph.TestCase) {
	t.Helper()
	p, err := ast.NewParser()
	if err != nil {
		t.Fatal(err)
	}
	prog, err := p.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	prog.AppendTerminal()

	opts := config.Default()
	opts.CreateVisual = false
	e := NewEngine(prog, opts)
	root, cases, err := e.Explore()
	if err != nil {
		t.Fatal(err)
	}
	return root, cases
}

func modelEq(m map[string]int, want map[string]int) bool {
	if len(m) != len(want) {
		return false
	}
	for k, v := range want {
		if m[k] != v {
			return false
		}
	}
	return true
}

// S1: a nested if under an outer if, terminating in an assert. Three
// explored leaves reach the terminal: the assert's jump, the inner
// if's false continuation, and the outer if's false continuation.
// Every assigned variable here (x, y) is a first-occurrence literal
// bind, so per the symbolic assignment rule both stay free throughout
// rather than concretizing to 0; the assert-path constraint's only
// solution (y=11, x=22) falls outside the solver's default +/-20
// search radius, so that leaf is reported infeasible for a different
// reason than a direct 0-vs-0 contradiction.
func TestExploreNestedIfWithAssert(t *testing.T) {
	root, cases := run(t, "x=0\ny=0\nz=2*y\nif z==x:\n    if x>y+10:\n        assert False\n")

	if len(cases) != 3 {
		t.Fatalf("expected 3 terminal test cases, got %d: %+v", len(cases), cases)
	}
	if !cases[0].Infeasible {
		t.Fatalf("case 0 (assert path) expected infeasible, got %+v", cases[0])
	}
	if !modelEq(cases[1].Model, map[string]int{"x": 0, "y": 0}) {
		t.Fatalf("case 1 (inner-if false) expected model x=0,y=0, got %+v", cases[1])
	}
	if !modelEq(cases[2].Model, map[string]int{"x": 0, "y": 1}) {
		t.Fatalf("case 2 (outer-if false) expected model x=0,y=1, got %+v", cases[2])
	}

	// x=0 -> y=0 -> z=2*y -> outer if, which forks to the inner if
	// (true) before its own false continuation.
	if got := len(root.Children); got != 1 {
		t.Fatalf("root children = %d, want 1", got)
	}
	yNode := root.Children[0]
	zNode := yNode.Children[0]
	outerIf := zNode.Children[0]
	if outerIf.Kind != digraph.KindIf {
		t.Fatalf("expected outer if node, got kind %v", outerIf.Kind)
	}
	if len(outerIf.Children) != 2 {
		t.Fatalf("outer if children = %d, want 2 (true branch, false continuation)", len(outerIf.Children))
	}
	innerIf := outerIf.Children[0]
	if innerIf.Kind != digraph.KindIf {
		t.Fatalf("expected inner if node, got kind %v", innerIf.Kind)
	}
	if got := innerIf.Children[0].State.EntryEdge.String(); got != "True" {
		t.Fatalf("inner if's true child entry edge = %q, want True", got)
	}
	if got := outerIf.Children[1].State.EntryEdge.String(); got != "False" {
		t.Fatalf("outer if's continuation entry edge = %q, want False", got)
	}
	if innerIf.Children[0].Kind != digraph.KindAssert {
		t.Fatalf("expected inner if's true child to be the assert, got kind %v", innerIf.Children[0].Kind)
	}
	if got := len(innerIf.Children[0].Children); got != 1 {
		t.Fatalf("assert should have a single jump child, got %d", got)
	}
	if innerIf.Children[0].Children[0].Kind != digraph.KindTerminal {
		t.Fatalf("assert's child should be the terminal, got kind %v", innerIf.Children[0].Children[0].Kind)
	}
}

// S2: an assert before an if routes directly to the synthetic
// terminal, never visiting the if at all.
func TestExploreAssertBeforeIfSkipsTheIf(t *testing.T) {
	root, cases := run(t, "var1=2\nassert False\nif var1 == 30:\n    print\n")

	if len(cases) != 1 {
		t.Fatalf("expected 1 terminal test case, got %d: %+v", len(cases), cases)
	}
	if !cases[0].AnyInput {
		t.Fatalf("expected any-input verdict, got %+v", cases[0])
	}

	assignNode := root
	if assignNode.Kind != digraph.KindAssign {
		t.Fatalf("root kind = %v, want assign", assignNode.Kind)
	}
	assertNode := assignNode.Children[0]
	if assertNode.Kind != digraph.KindAssert {
		t.Fatalf("expected assert as second node, got kind %v", assertNode.Kind)
	}
	if got := len(assertNode.Children); got != 1 {
		t.Fatalf("assert should have exactly one child (its jump target), got %d", got)
	}
	if assertNode.Children[0].Kind != digraph.KindTerminal {
		t.Fatalf("assert's only child should be the terminal, not the if; got kind %v", assertNode.Children[0].Kind)
	}
}

// S3: a single assignment, with no conditional at all, reports any
// input under the empty constraint set.
func TestExploreSingleAssignment(t *testing.T) {
	root, cases := run(t, "x=0\n")

	if len(cases) != 1 {
		t.Fatalf("expected 1 terminal test case, got %d: %+v", len(cases), cases)
	}
	if !cases[0].AnyInput {
		t.Fatalf("expected any-input verdict, got %+v", cases[0])
	}
	if got, want := root.Label, "x = symbolic"; got != want {
		t.Fatalf("assign label = %q, want %q", got, want)
	}
	if len(root.Children) != 1 || root.Children[0].Kind != digraph.KindTerminal {
		t.Fatalf("expected the assign's only child to be the terminal")
	}
}

// S4: a bare if with no prior constraint on the tested variable. Since
// x binds symbolically on its first (and only) assignment, both
// branches are satisfiable with a concrete witness rather than one
// side being unsatisfiable or "any input".
func TestExploreIfWithNoPriorConstraint(t *testing.T) {
	_, cases := run(t, "x=0\nif x > 5:\n    print\n")

	if len(cases) != 2 {
		t.Fatalf("expected 2 terminal test cases, got %d: %+v", len(cases), cases)
	}
	if !modelEq(cases[0].Model, map[string]int{"x": 6}) {
		t.Fatalf("true-branch case expected model x=6, got %+v", cases[0])
	}
	if !modelEq(cases[1].Model, map[string]int{"x": 0}) {
		t.Fatalf("false-branch case expected model x=0, got %+v", cases[1])
	}
}

// S5: same shape as S4 with a less-than test; the true branch's
// witness is the solver's first trial value 0, and the false branch's
// first witness in the solver's search order is the boundary value 10.
func TestExploreIfLessThanTenFalseBranchFindsBoundaryModel(t *testing.T) {
	_, cases := run(t, "n=0\nif n < 10:\n    print\n")

	if len(cases) != 2 {
		t.Fatalf("expected 2 terminal test cases, got %d: %+v", len(cases), cases)
	}
	if !modelEq(cases[0].Model, map[string]int{"n": 0}) {
		t.Fatalf("true-branch case expected model n=0, got %+v", cases[0])
	}
	if !modelEq(cases[1].Model, map[string]int{"n": 10}) {
		t.Fatalf("false-branch case expected model n=10, got %+v", cases[1])
	}
}

// S6: a conjunction decomposes into two atoms on the true branch and a
// single De Morgan disjunction on the false branch.
func TestExploreConjunctionDecomposesAndNegatesAsOneDisjunction(t *testing.T) {
	root, cases := run(t, "a=0\nif a < 5 and a > 0:\n    print\n")

	if len(cases) != 2 {
		t.Fatalf("expected 2 terminal test cases, got %d: %+v", len(cases), cases)
	}
	if v, ok := cases[0].Model["a"]; !ok || v <= 0 || v >= 5 {
		t.Fatalf("true-branch model expected a in (0,5), got %+v", cases[0])
	}
	if v, ok := cases[1].Model["a"]; !ok || !(v >= 5 || v <= 0) {
		t.Fatalf("false-branch model expected a>=5 or a<=0, got %+v", cases[1])
	}

	ifNode := root.Children[0]
	if ifNode.Kind != digraph.KindIf {
		t.Fatalf("expected if node, got kind %v", ifNode.Kind)
	}
	if len(ifNode.Children) != 2 {
		t.Fatalf("if node children = %d, want 2", len(ifNode.Children))
	}
}

func TestExploreWithVisualsEnabledDoesNotError(t *testing.T) {
	p, err := ast.NewParser()
	if err != nil {
		t.Fatal(err)
	}
	prog, err := p.Parse("x=0\n")
	if err != nil {
		t.Fatal(err)
	}
	prog.AppendTerminal()

	e := NewEngine(prog, config.Default())
	if _, _, err := e.Explore(); err != nil {
		t.Fatalf("Explore with visuals enabled returned error: %v", err)
	}
}
