package eval

import (
	"github.com/sudouser2010/halfwaytree/ast"
	"github.com/sudouser2010/halfwaytree/symex"
	"github.com/sudouser2010/halfwaytree/symstate"
	"github.com/sudouser2010/halfwaytree/term"
)

// EvalInt evaluates an integer-valued expression to a term, looking up
// every free name in env. An unbound name is a fatal UndefinedVariable
// error.
func EvalInt(e ast.Expr, env *symstate.Environment) (*term.IntTerm, error) {
	switch n := e.(type) {
	case *ast.IntLiteral:
		return term.ConstInt(n.Value), nil
	case *ast.Name:
		t, ok := env.Lookup(n.Ident)
		if !ok {
			return nil, symex.Wrap(symex.UndefinedVariable, nil,
				"variable %q referenced before assignment", n.Ident)
		}
		return t, nil
	case *ast.BinOp:
		l, err := EvalInt(n.L, env)
		if err != nil {
			return nil, err
		}
		r, err := EvalInt(n.R, env)
		if err != nil {
			return nil, err
		}
		op, err := arithOp(n.Op)
		if err != nil {
			return nil, err
		}
		return term.FoldBinOp(op, l, r)
	}
	return nil, symex.Errorf(symex.UnsupportedSyntax, "unsupported integer expression %T", e)
}

func arithOp(op ast.ArithOp) (term.ArithOp, error) {
	switch op {
	case ast.OpAdd:
		return term.Add, nil
	case ast.OpSub:
		return term.Sub, nil
	case ast.OpMul:
		return term.Mul, nil
	case ast.OpDiv:
		return term.Div, nil
	}
	return 0, symex.Errorf(symex.UnsupportedSyntax, "unsupported arithmetic operator %v", op)
}

func compareOp(op ast.CompareOp) (term.CompareOp, error) {
	switch op {
	case ast.OpEq:
		return term.Eq, nil
	case ast.OpNe:
		return term.Ne, nil
	case ast.OpLt:
		return term.Lt, nil
	case ast.OpLe:
		return term.Le, nil
	case ast.OpGt:
		return term.Gt, nil
	case ast.OpGe:
		return term.Ge, nil
	}
	return 0, symex.Errorf(symex.UnsupportedSyntax, "unsupported comparison operator %v", op)
}

// EvalCompare evaluates a single atomic comparison to a boolean term.
func EvalCompare(c *ast.Compare, env *symstate.Environment) (*term.BoolTerm, error) {
	l, err := EvalInt(c.L, env)
	if err != nil {
		return nil, err
	}
	r, err := EvalInt(c.R, env)
	if err != nil {
		return nil, err
	}
	op, err := compareOp(c.Op)
	if err != nil {
		return nil, err
	}
	return term.Compare(op, l, r), nil
}

// DecomposeTest flattens an If's test expression into its ordered list
// of atomic comparison terms: a single Compare becomes a one-element
// list, a BoolAnd is evaluated comparison by comparison in source order.
func DecomposeTest(test ast.Expr, env *symstate.Environment) ([]*term.BoolTerm, error) {
	switch n := test.(type) {
	case *ast.Compare:
		c, err := EvalCompare(n, env)
		if err != nil {
			return nil, err
		}
		return []*term.BoolTerm{c}, nil
	case *ast.BoolAnd:
		atoms := make([]*term.BoolTerm, 0, len(n.Operands))
		for _, operand := range n.Operands {
			cmp, ok := operand.(*ast.Compare)
			if !ok {
				return nil, symex.Errorf(symex.UnsupportedSyntax,
					"'and' operand %T is not a comparison", operand)
			}
			c, err := EvalCompare(cmp, env)
			if err != nil {
				return nil, err
			}
			atoms = append(atoms, c)
		}
		return atoms, nil
	}
	return nil, symex.Errorf(symex.UnsupportedSyntax, "unsupported if-test expression %T", test)
}
