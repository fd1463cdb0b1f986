package eval

import (
	"testing"

	"github.com/sudouser2010/halfwaytree/ast"
	"github.com/sudouser2010/halfwaytree/symstate"
	"github.com/sudouser2010/halfwaytree/term"
)

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	p, err := ast.NewParser()
	if err != nil {
		t.Fatal(err)
	}
	prog, err := p.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if stmt, ok := prog.Root.Stmt(0).(*ast.Assign); ok {
		return stmt.RHS
	}
	t.Fatalf("expected first statement to be an assignment, got %T", prog.Root.Stmt(0))
	return nil
}

func TestEvalIntConstantFoldsPureLiterals(t *testing.T) {
	env := symstate.NewEnvironment()
	expr := parseExpr(t, "x = 2 * 3 + 1\n")
	r, err := EvalInt(expr, env)
	if err != nil {
		t.Fatal(err)
	}
	v, ok := r.IsConst()
	if !ok || v != 7 {
		t.Fatalf("expected constant 7, got %d (const=%v)", v, ok)
	}
}

func TestEvalIntSymbolicOperandDoesNotFold(t *testing.T) {
	env := symstate.NewEnvironment()
	env.Bind("y", term.FreeInt("y"))
	expr := parseExpr(t, "x = 2 * y\n")
	r, err := EvalInt(expr, env)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.IsConst(); ok {
		t.Fatalf("expected a non-constant term, got constant %s", r)
	}
}

func TestEvalIntUndefinedVariableErrors(t *testing.T) {
	env := symstate.NewEnvironment()
	expr := parseExpr(t, "x = y + 1\n")
	if _, err := EvalInt(expr, env); err == nil {
		t.Fatal("expected an error for an undefined variable")
	}
}

func TestDecomposeTestFlattensConjunction(t *testing.T) {
	env := symstate.NewEnvironment()
	env.Bind("x", term.FreeInt("x"))
	env.Bind("y", term.FreeInt("y"))
	p, err := ast.NewParser()
	if err != nil {
		t.Fatal(err)
	}
	prog, err := p.Parse("if x < 10 and y >= 0:\n    print\n")
	if err != nil {
		t.Fatal(err)
	}
	ifStmt := prog.Root.Stmt(0).(*ast.If)
	atoms, err := DecomposeTest(ifStmt.Test, env)
	if err != nil {
		t.Fatal(err)
	}
	if len(atoms) != 2 {
		t.Fatalf("expected 2 atoms, got %d", len(atoms))
	}
}
