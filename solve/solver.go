package solve

import (
	"sort"

	"github.com/sudouser2010/halfwaytree/term"
)

// Model maps variable name to the concrete integer a satisfying
// assignment binds it to.
type Model map[string]int

// Result is the outcome of checking a constraint conjunction.
type Result struct {
	Sat   bool
	Model Model // nil when Sat is false, or when Sat is true with no free variables
}

// Solver is the solver adapter contract: check a set of boolean terms
// for satisfiability and, if satisfiable, produce a model.
type Solver interface {
	Check(constraints []*term.BoolTerm) (Result, error)
}

// IntRangeSolver decides satisfiability by backtracking search over a
// bounded symmetric integer range for each free variable. The search
// is exhaustive only within that range: a conjunction whose solutions
// all lie outside [-Bound, Bound] is reported unsatisfiable. It is not
// a general-purpose integer arithmetic decision procedure.
type IntRangeSolver struct {
	// Bound is the search radius: each variable is tried over
	// [-Bound, Bound]. Zero selects DefaultBound.
	Bound int
}

// DefaultBound is used when IntRangeSolver.Bound is zero.
const DefaultBound = 20

// NewIntRangeSolver returns a solver with the default search bound.
func NewIntRangeSolver() *IntRangeSolver {
	return &IntRangeSolver{Bound: DefaultBound}
}

// Check is part of the Solver interface.
func (s *IntRangeSolver) Check(constraints []*term.BoolTerm) (Result, error) {
	bound := s.Bound
	if bound == 0 {
		bound = DefaultBound
	}
	names := collectNames(constraints)
	if len(names) == 0 {
		sat, err := evalAll(constraints, nil)
		if err != nil {
			return Result{}, err
		}
		tracer().Debugf("no free variables, conjunction is %v", sat)
		return Result{Sat: sat}, nil
	}
	assignment := make(Model, len(names))
	found, err := search(constraints, names, 0, bound, assignment)
	if err != nil {
		return Result{}, err
	}
	if !found {
		tracer().Debugf("unsat over %d variable(s) within +/-%d", len(names), bound)
		return Result{Sat: false}, nil
	}
	model := make(Model, len(assignment))
	for k, v := range assignment {
		model[k] = v
	}
	return Result{Sat: true, Model: model}, nil
}

func search(constraints []*term.BoolTerm, names []string, i int, bound int, assignment Model) (bool, error) {
	if i == len(names) {
		ok, err := evalAll(constraints, assignment)
		if err != nil || !ok {
			return false, err
		}
		return true, nil
	}
	name := names[i]
	for v := 0; v <= bound; v++ {
		for _, candidate := range []int{v, -v} {
			assignment[name] = candidate
			found, err := search(constraints, names, i+1, bound, assignment)
			if err != nil {
				return false, err
			}
			if found {
				return true, nil
			}
			if v == 0 {
				break // +0 and -0 are the same trial
			}
		}
	}
	delete(assignment, name)
	return false, nil
}

func evalAll(constraints []*term.BoolTerm, assignment Model) (bool, error) {
	for _, c := range constraints {
		ok, err := c.EvalConcrete(assignment)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func collectNames(constraints []*term.BoolTerm) []string {
	seen := map[string]bool{}
	var order []string
	for _, c := range constraints {
		c.Names(seen, &order)
	}
	sort.Strings(order)
	return order
}
