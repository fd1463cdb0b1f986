package eval

import (
	"fmt"

	"github.com/sudouser2010/halfwaytree/ast"
	"github.com/sudouser2010/halfwaytree/symex"
	"github.com/sudouser2010/halfwaytree/symstate"
	"github.com/sudouser2010/halfwaytree/term"
)

// StmtResult is what evaluating one statement against an environment
// produces: a node label, and, for an If, the decomposed test atoms
// the branch forker needs.
type StmtResult struct {
	Label string
	Atoms []*term.BoolTerm // non-nil only for an *ast.If
}

// EvalStatement dispatches on stmt's concrete kind, mutating env in
// place (Assign) and returning the node label to render.
func EvalStatement(stmt ast.Stmt, env *symstate.Environment, showUnmutated bool) (StmtResult, error) {
	switch s := stmt.(type) {
	case *ast.Assign:
		label, err := evalAssign(s, env)
		return StmtResult{Label: label}, err
	case *ast.If:
		return evalIf(s, env, showUnmutated)
	case *ast.Print:
		return StmtResult{Label: s.String()}, nil
	case *ast.Assert:
		return StmtResult{Label: "Error !"}, nil
	case *ast.Terminal:
		return StmtResult{Label: ""}, nil
	}
	return StmtResult{}, symex.Errorf(symex.UnsupportedSyntax, "unsupported statement %T", stmt)
}

// evalAssign implements the literal-vs-expression binding rule: a bare
// integer literal on a first assignment declares a fresh symbolic
// constant (the node reads "x = symbolic"); a bare literal on a
// rebind concretizes the variable; anything else evaluates the
// right-hand side under the current environment and (re)binds to the
// result, introducing a fresh symbolic constant first if this is the
// variable's first appearance.
func evalAssign(s *ast.Assign, env *symstate.Environment) (string, error) {
	if lit, ok := s.RHS.(*ast.IntLiteral); ok {
		if env.Contains(s.Name) {
			env.Bind(s.Name, term.ConstInt(lit.Value))
			return fmt.Sprintf("%s = %d", s.Name, lit.Value), nil
		}
		env.Bind(s.Name, term.FreeInt(s.Name))
		return fmt.Sprintf("%s = symbolic", s.Name), nil
	}
	if !env.Contains(s.Name) {
		env.Bind(s.Name, term.FreeInt(s.Name))
	}
	rhs, err := EvalInt(s.RHS, env)
	if err != nil {
		return "", err
	}
	env.Bind(s.Name, rhs)
	return fmt.Sprintf("%s = %s", s.Name, rhs), nil
}

// evalIf decomposes the test into atomic comparisons and builds the
// node label. When showUnmutated is set the label uses the source-form
// rendering of the test rather than the substituted symbolic form.
func evalIf(s *ast.If, env *symstate.Environment, showUnmutated bool) (StmtResult, error) {
	atoms, err := DecomposeTest(s.Test, env)
	if err != nil {
		return StmtResult{}, err
	}
	label := s.String()
	if !showUnmutated {
		label = fmt.Sprintf("if %s:", term.And(atoms...))
	}
	return StmtResult{Label: label, Atoms: atoms}, nil
}
