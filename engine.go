package halfwaytree

import (
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/sudouser2010/halfwaytree/ast"
	"github.com/sudouser2010/halfwaytree/config"
	"github.com/sudouser2010/halfwaytree/cursor"
	"github.com/sudouser2010/halfwaytree/digraph"
	"github.com/sudouser2010/halfwaytree/eval"
	"github.com/sudouser2010/halfwaytree/solve"
	"github.com/sudouser2010/halfwaytree/symex"
	"github.com/sudouser2010/halfwaytree/symstate"
)

// Engine drives the path-exploration traversal: it walks a parsed
// program via the cursor, dispatches each statement to the evaluator,
// forks state at conditionals, consults the solver at path termini,
// and emits the explored node tree into a renderer.
type Engine struct {
	Program  *ast.Program
	Solver   solve.Solver
	Renderer digraph.Renderer
	Options  config.Options

	nextID    int
	testCases []digraph.TestCase
}

// NewEngine builds an Engine with a default bounded solver and a DOT renderer.
func NewEngine(program *ast.Program, opts config.Options) *Engine {
	return &Engine{
		Program:  program,
		Solver:   solve.NewCachingSolver(solve.NewIntRangeSolver()),
		Renderer: digraph.NewDotRenderer(),
		Options:  opts,
	}
}

// Explore walks the program from its first statement and returns the
// root of the explored node tree together with the ordered list of
// per-path test cases. The traversal aborts with an error on the first
// fatal condition; there is no partial-graph guarantee past that point.
func (e *Engine) Explore() (*Node, []digraph.TestCase, error) {
	e.nextID = 0
	e.testCases = nil
	root, err := e.explore(cursor.Root(), symstate.NewState(), symstate.EntryNone)
	if err != nil {
		return nil, nil, err
	}
	if e.Options.CreateVisual {
		if err := e.Renderer.Draw(""); err != nil {
			return nil, nil, err
		}
	}
	return root, e.testCases, nil
}

func (e *Engine) allocID() int {
	id := e.nextID
	e.nextID++
	return id
}

// explore implements the Path Explorer recursion for a single cursor
// position and its carried path state. entryEdge labels the branch
// that led to this particular statement, for rendering the incoming
// edge only; it is not persisted on state, since state's Env and
// Constraints are shared and mutated across every statement of a path
// while the edge label is specific to a single hop.
func (e *Engine) explore(cur cursor.Cursor, state *symstate.State, entryEdge symstate.EntryEdge) (*Node, error) {
	stmt, err := cur.Resolve(e.Program.Root)
	if err != nil {
		return nil, symex.Wrap(symex.InternalInvariant, err, "resolving cursor")
	}

	id := e.allocID()
	result, err := eval.EvalStatement(stmt, state.Env, e.Options.ShowUnmutatedConstraints)
	if err != nil {
		return nil, err
	}

	nodeState := &symstate.State{Env: state.Env, Constraints: state.Constraints, EntryEdge: entryEdge}
	node := &Node{ID: id, Kind: kindOf(stmt), Label: result.Label, State: nodeState}

	hasSiblingBelow, err := cur.HasSiblingBelow(e.Program.Root)
	if err != nil {
		return nil, symex.Wrap(symex.InternalInvariant, err, "checking sibling below")
	}
	hasAncestorSibling, err := cur.HasSiblingBelowInAnyAncestor(e.Program.Root)
	if err != nil {
		return nil, symex.Wrap(symex.InternalInvariant, err, "checking ancestor sibling")
	}
	isTerminal := !hasSiblingBelow && !hasAncestorSibling

	if isTerminal {
		feasible, err := e.finalizeTerminal(node, state)
		if err != nil {
			return nil, err
		}
		if e.Options.OnlyShowFeasiblePaths && !feasible {
			return node, nil
		}
	}

	e.emit(node, isTerminal)

	_, isIf := stmt.(*ast.If)
	if isIf {
		trueState := eval.Fork(state, result.Atoms)
		thenCursor := cur.DescendIntoThenBranch()
		child, err := e.explore(thenCursor, trueState, symstate.EntryTrue)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
		e.Renderer.AddEdge(node.ID, child.ID, child.State.EntryEdge.String())
	}

	if _, isAssert := stmt.(*ast.Assert); isAssert {
		lastIdx := e.Program.Root.Len() - 1
		child, err := e.explore(cursor.AtRootIndex(lastIdx), state, symstate.EntryNone)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
		e.Renderer.AddEdge(node.ID, child.ID, "")
		return node, nil
	}

	if isTerminal {
		return node, nil
	}
	if e.Options.OnlyShowFeasiblePaths {
		if sat, _ := e.pathFeasible(state); !sat {
			return node, nil
		}
	}

	continuationEdge := symstate.EntryNone
	if isIf {
		continuationEdge = symstate.EntryFalse
	}

	if hasSiblingBelow {
		next := cur.NextInSameBody()
		child, err := e.explore(next, state, continuationEdge)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
		e.Renderer.AddEdge(node.ID, child.ID, child.State.EntryEdge.String())
		return node, nil
	}

	next, ok, err := cur.NextInAncestorBody(e.Program.Root)
	if err != nil {
		return nil, symex.Wrap(symex.InternalInvariant, err, "computing next-in-ancestor-body")
	}
	if ok {
		child, err := e.explore(next, state, continuationEdge)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
		e.Renderer.AddEdge(node.ID, child.ID, child.State.EntryEdge.String())
	}
	return node, nil
}

// finalizeTerminal consults the solver, appends the verdict to the
// node's label, and records the path's test case. It returns whether
// the path is feasible.
func (e *Engine) finalizeTerminal(node *Node, state *symstate.State) (bool, error) {
	result, err := e.Solver.Check(state.Constraints.Materialize())
	if err != nil {
		return false, symex.Wrap(symex.InternalInvariant, err, "solver check failed")
	}
	var verdict string
	if !result.Sat {
		verdict = digraph.ColorTag("red", "path unsatisfiable")
		if !e.Options.OnlyShowFeasiblePaths {
			e.testCases = append(e.testCases, digraph.TestCase{Infeasible: true})
		}
	} else if len(result.Model) == 0 {
		verdict = digraph.ColorTag("green", "any input")
		e.testCases = append(e.testCases, digraph.TestCase{AnyInput: true})
	} else {
		verdict = digraph.ColorTag("green", modelString(result.Model))
		e.testCases = append(e.testCases, digraph.TestCase{Model: result.Model})
	}
	node.Label = verdict
	return result.Sat, nil
}

// pathFeasible checks the current constraint store without recording
// a test case, used by the feasible-only pruning rule mid-traversal.
func (e *Engine) pathFeasible(state *symstate.State) (bool, error) {
	result, err := e.Solver.Check(state.Constraints.Materialize())
	if err != nil {
		return false, err
	}
	return result.Sat, nil
}

func (e *Engine) emit(node *Node, isTerminal bool) {
	shape, style := digraph.ShapeStyle(node.Kind)
	label := digraph.Label(node.Label, digraph.LabelOptions{
		ShowNodeID:  e.Options.ShowNodeID,
		NodeID:      node.ID,
		IsTerminal:  isTerminal,
		UseHTMLLike: e.Options.UseHTMLLikeLabel,
	})
	e.Renderer.AddNode(node.ID, label, shape, style)
}

func kindOf(stmt ast.Stmt) digraph.NodeKind {
	switch stmt.(type) {
	case *ast.If:
		return digraph.KindIf
	case *ast.Assert:
		return digraph.KindAssert
	case *ast.Print:
		return digraph.KindPrint
	case *ast.Terminal:
		return digraph.KindTerminal
	default:
		return digraph.KindAssign
	}
}

func modelString(model solve.Model) string {
	names := make([]string, 0, len(model))
	for name := range model {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) bool { return a < b })
	s := ""
	for i, name := range names {
		if i > 0 {
			s += ", "
		}
		s += name + "=" + strconv.Itoa(model[name])
	}
	return s
}
