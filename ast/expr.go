package ast

import (
	"fmt"

	"github.com/sudouser2010/halfwaytree/symex"
)

// Expr is any expression node: IntLiteral, Name, BinOp, Compare or BoolAnd.
type Expr interface {
	Span() symex.Span
	exprNode()
}

// IntLiteral is an integer constant written directly in source.
type IntLiteral struct {
	Value int
	span  symex.Span
}

func NewIntLiteral(v int, span symex.Span) *IntLiteral { return &IntLiteral{Value: v, span: span} }
func (e *IntLiteral) Span() symex.Span                 { return e.span }
func (e *IntLiteral) exprNode()                              {}
func (e *IntLiteral) String() string                         { return fmt.Sprintf("%d", e.Value) }

// Name is a reference to a bound variable.
type Name struct {
	Ident string
	span  symex.Span
}

func NewName(ident string, span symex.Span) *Name { return &Name{Ident: ident, span: span} }
func (e *Name) Span() symex.Span                  { return e.span }
func (e *Name) exprNode()                               {}
func (e *Name) String() string                          { return e.Ident }

// ArithOp is a binary arithmetic operator in source form.
type ArithOp int

const (
	OpAdd ArithOp = iota
	OpSub
	OpMul
	OpDiv
)

func (op ArithOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

// BinOp is an arithmetic combination of two integer expressions.
type BinOp struct {
	Op    ArithOp
	L, R  Expr
	span  symex.Span
}

func NewBinOp(op ArithOp, l, r Expr, span symex.Span) *BinOp {
	return &BinOp{Op: op, L: l, R: r, span: span}
}
func (e *BinOp) Span() symex.Span { return e.span }
func (e *BinOp) exprNode()              {}
func (e *BinOp) String() string         { return fmt.Sprintf("%s %s %s", e.L, e.Op, e.R) }

// CompareOp is a relational operator in source form.
type CompareOp int

const (
	OpEq CompareOp = iota
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

func (op CompareOp) String() string {
	switch op {
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	}
	return "?"
}

// Compare is a single relational comparison between two integer expressions.
type Compare struct {
	Op   CompareOp
	L, R Expr
	span symex.Span
}

func NewCompare(op CompareOp, l, r Expr, span symex.Span) *Compare {
	return &Compare{Op: op, L: l, R: r, span: span}
}
func (e *Compare) Span() symex.Span { return e.span }
func (e *Compare) exprNode()              {}
func (e *Compare) String() string         { return fmt.Sprintf("%s %s %s", e.L, e.Op, e.R) }

// BoolAnd is a conjunction of boolean expressions, used for an if
// test with multiple comparisons joined by "and".
type BoolAnd struct {
	Operands []Expr
	span     symex.Span
}

func NewBoolAnd(operands []Expr, span symex.Span) *BoolAnd {
	return &BoolAnd{Operands: operands, span: span}
}
func (e *BoolAnd) Span() symex.Span { return e.span }
func (e *BoolAnd) exprNode()              {}
func (e *BoolAnd) String() string {
	s := ""
	for i, o := range e.Operands {
		if i > 0 {
			s += " and "
		}
		s += fmt.Sprintf("%s", o)
	}
	return s
}
