package ast

import (
	"fmt"

	"github.com/sudouser2010/halfwaytree/cursor"
	"github.com/sudouser2010/halfwaytree/symex"
)

// Stmt is any statement node: Assign, If, Print, Assert, or the
// synthetic Terminal appended before traversal.
type Stmt interface {
	Span() symex.Span
	// ThenBody returns the statement's then-body when it is an If,
	// and nil otherwise. Satisfies cursor.Statement.
	ThenBody() cursor.Body
	stmtNode()
}

// Body is an ordered sequence of statements: a program's top level, or
// an If's then-body. It satisfies cursor.Body.
type Body struct {
	Stmts []Stmt
}

func NewBody(stmts ...Stmt) *Body { return &Body{Stmts: stmts} }

// Len is part of cursor.Body.
func (b *Body) Len() int { return len(b.Stmts) }

// StatementAt is part of cursor.Body.
func (b *Body) StatementAt(i int) (cursor.Statement, error) {
	if i < 0 || i >= len(b.Stmts) {
		return nil, fmt.Errorf("statement index %d out of range (body has %d statements)", i, len(b.Stmts))
	}
	return b.Stmts[i], nil
}

// Stmt returns the statement at index i as an ast.Stmt, for callers
// that already hold an *ast.Body rather than a cursor.Body.
func (b *Body) Stmt(i int) Stmt { return b.Stmts[i] }

// Append adds a statement to the end of the body, used when splicing
// in the synthetic terminal marker.
func (b *Body) Append(s Stmt) { b.Stmts = append(b.Stmts, s) }

// Assign is `name = expr`.
type Assign struct {
	Name string
	RHS  Expr
	span symex.Span
}

func NewAssign(name string, rhs Expr, span symex.Span) *Assign {
	return &Assign{Name: name, RHS: rhs, span: span}
}
func (s *Assign) Span() symex.Span  { return s.span }
func (s *Assign) ThenBody() cursor.Body   { return nil }
func (s *Assign) stmtNode()               {}
func (s *Assign) String() string          { return fmt.Sprintf("%s = %s", s.Name, s.RHS) }

// If is `if test:` followed by an indented then-body. There is no
// explicit else subtree; the false branch continues as fall-through
// in the enclosing body with a negated constraint.
type If struct {
	Test Expr
	Then *Body
	span symex.Span
}

func NewIf(test Expr, then *Body, span symex.Span) *If {
	return &If{Test: test, Then: then, span: span}
}
func (s *If) Span() symex.Span { return s.span }
func (s *If) ThenBody() cursor.Body {
	if s.Then == nil {
		return nil
	}
	return s.Then
}
func (s *If) stmtNode()     {}
func (s *If) String() string { return fmt.Sprintf("if %s:", s.Test) }

// Print is the bare `print` statement.
type Print struct {
	span symex.Span
}

func NewPrint(span symex.Span) *Print { return &Print{span: span} }
func (s *Print) Span() symex.Span     { return s.span }
func (s *Print) ThenBody() cursor.Body      { return nil }
func (s *Print) stmtNode()                  {}
func (s *Print) String() string             { return "print" }

// Assert is `assert False`; any nontrivial argument is accepted
// syntactically but ignored, matching the source's always-fatal
// treatment of assertions.
type Assert struct {
	span symex.Span
}

func NewAssert(span symex.Span) *Assert { return &Assert{span: span} }
func (s *Assert) Span() symex.Span      { return s.span }
func (s *Assert) ThenBody() cursor.Body       { return nil }
func (s *Assert) stmtNode()                   {}
func (s *Assert) String() string              { return "assert False" }

// Terminal is the synthetic print-equivalent statement appended to the
// root body so that traversal always ends at a solver-verdict node.
type Terminal struct {
	span symex.Span
}

func NewTerminal(span symex.Span) *Terminal { return &Terminal{span: span} }
func (s *Terminal) Span() symex.Span        { return s.span }
func (s *Terminal) ThenBody() cursor.Body         { return nil }
func (s *Terminal) stmtNode()                     {}
func (s *Terminal) String() string                { return "<terminal>" }

// Program is the parsed root: a single top-level body.
type Program struct {
	Root *Body
}

// AppendTerminal appends a synthetic Terminal statement to the
// program's root body, giving the explorer a node to always end on.
func (p *Program) AppendTerminal() {
	p.Root.Append(NewTerminal(symex.Span{0, 0}))
}
