package term

import (
	"fmt"
	"strings"
)

// CompareOp is the set of relational operators a Compare term can carry.
type CompareOp int

const (
	Eq CompareOp = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

func (op CompareOp) String() string {
	switch op {
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	}
	return "?"
}

func (op CompareOp) negate() CompareOp {
	switch op {
	case Eq:
		return Ne
	case Ne:
		return Eq
	case Lt:
		return Ge
	case Le:
		return Gt
	case Gt:
		return Le
	case Ge:
		return Lt
	}
	return op
}

type boolKind int

const (
	boolCompare boolKind = iota
	boolAnd
	boolOr
	boolNot
)

// BoolTerm is a boolean-valued symbolic term: a relational comparison
// of two integer terms, or a logical combination of boolean terms.
type BoolTerm struct {
	kind     boolKind
	cmpOp    CompareOp // boolCompare
	l, r     *IntTerm  // boolCompare
	operands []*BoolTerm
}

// Compare creates an atomic relational comparison term.
func Compare(op CompareOp, l, r *IntTerm) *BoolTerm {
	return &BoolTerm{kind: boolCompare, cmpOp: op, l: l, r: r}
}

// And combines boolean terms in conjunction. A single operand collapses
// to itself, so a bare comparison is a valid "if" test on its own.
func And(operands ...*BoolTerm) *BoolTerm {
	if len(operands) == 1 {
		return operands[0]
	}
	return &BoolTerm{kind: boolAnd, operands: operands}
}

// Or combines boolean terms in disjunction.
func Or(operands ...*BoolTerm) *BoolTerm {
	if len(operands) == 1 {
		return operands[0]
	}
	return &BoolTerm{kind: boolOr, operands: operands}
}

// Not negates a boolean term.
func Not(b *BoolTerm) *BoolTerm {
	if b == nil {
		return nil
	}
	if b.kind == boolCompare {
		// Pushing negation into the comparison operator keeps terms
		// flat and gives nicer solver/rendering output than wrapping
		// in an explicit Not node.
		return Compare(b.cmpOp.negate(), b.l, b.r)
	}
	return &BoolTerm{kind: boolNot, operands: []*BoolTerm{b}}
}

// Negate builds the De Morgan dual of a conjunction of atoms, used to
// construct the false-branch constraint from the true-branch atoms.
func Negate(atoms []*BoolTerm) *BoolTerm {
	negated := make([]*BoolTerm, len(atoms))
	for i, a := range atoms {
		negated[i] = Not(a)
	}
	return Or(negated...)
}

// EvalConcrete evaluates b under a concrete variable assignment.
func (b *BoolTerm) EvalConcrete(assignment map[string]int) (bool, error) {
	if b == nil {
		return false, fmt.Errorf("internal error: nil bool term")
	}
	switch b.kind {
	case boolCompare:
		l, err := b.l.EvalConcrete(assignment)
		if err != nil {
			return false, err
		}
		r, err := b.r.EvalConcrete(assignment)
		if err != nil {
			return false, err
		}
		return compareConcrete(b.cmpOp, l, r), nil
	case boolNot:
		v, err := b.operands[0].EvalConcrete(assignment)
		if err != nil {
			return false, err
		}
		return !v, nil
	case boolAnd:
		for _, op := range b.operands {
			v, err := op.EvalConcrete(assignment)
			if err != nil {
				return false, err
			}
			if !v {
				return false, nil
			}
		}
		return true, nil
	case boolOr:
		for _, op := range b.operands {
			v, err := op.EvalConcrete(assignment)
			if err != nil {
				return false, err
			}
			if v {
				return true, nil
			}
		}
		return false, nil
	}
	return false, fmt.Errorf("internal error: unknown bool term kind %d", b.kind)
}

func compareConcrete(op CompareOp, l, r int) bool {
	switch op {
	case Eq:
		return l == r
	case Ne:
		return l != r
	case Lt:
		return l < r
	case Le:
		return l <= r
	case Gt:
		return l > r
	case Ge:
		return l >= r
	}
	return false
}

// Names collects every free-variable name reachable from b, in
// left-to-right order.
func (b *BoolTerm) Names(into map[string]bool, order *[]string) {
	if b == nil {
		return
	}
	switch b.kind {
	case boolCompare:
		b.l.Names(into, order)
		b.r.Names(into, order)
	case boolAnd, boolOr, boolNot:
		for _, op := range b.operands {
			op.Names(into, order)
		}
	}
}

// Substitute evaluates b under env, as IntTerm.Substitute does for
// integer terms.
func (b *BoolTerm) Substitute(env Env) (*BoolTerm, error) {
	if b == nil {
		return nil, nil
	}
	switch b.kind {
	case boolCompare:
		l, err := b.l.Substitute(env)
		if err != nil {
			return nil, err
		}
		r, err := b.r.Substitute(env)
		if err != nil {
			return nil, err
		}
		return Compare(b.cmpOp, l, r), nil
	case boolAnd, boolOr, boolNot:
		subs := make([]*BoolTerm, len(b.operands))
		for i, op := range b.operands {
			s, err := op.Substitute(env)
			if err != nil {
				return nil, err
			}
			subs[i] = s
		}
		return &BoolTerm{kind: b.kind, operands: subs}, nil
	}
	return nil, fmt.Errorf("internal error: unknown bool term kind %d", b.kind)
}

// Atoms decomposes b into its flat list of relational comparisons when
// b is a pure conjunction (or a single comparison). Returns false if b
// is not of that shape.
func (b *BoolTerm) Atoms() ([]*BoolTerm, bool) {
	if b == nil {
		return nil, false
	}
	if b.kind == boolCompare {
		return []*BoolTerm{b}, true
	}
	if b.kind == boolAnd {
		var out []*BoolTerm
		for _, op := range b.operands {
			atoms, ok := op.Atoms()
			if !ok {
				return nil, false
			}
			out = append(out, atoms...)
		}
		return out, true
	}
	return nil, false
}

func (b *BoolTerm) String() string {
	if b == nil {
		return "<nil>"
	}
	switch b.kind {
	case boolCompare:
		return fmt.Sprintf("%s %s %s", b.l, b.cmpOp, b.r)
	case boolNot:
		return fmt.Sprintf("Not(%s)", b.operands[0])
	case boolAnd:
		return joinOperands(b.operands, " and ")
	case boolOr:
		return joinOperands(b.operands, " or ")
	}
	return "?"
}

func joinOperands(operands []*BoolTerm, sep string) string {
	parts := make([]string, len(operands))
	for i, o := range operands {
		parts[i] = o.String()
	}
	return strings.Join(parts, sep)
}
