// Package symex holds the leaf types shared across every other package
// in this module: the fatal-error type and the source-span type. It
// imports no other package of this module, so anything may depend on it without
// risking a cycle.
package symex

import "fmt"

// ErrorKind classifies the fatal conditions the engine can report.
// InfeasiblePath and AssertionReached are not errors — they are
// first-class outcomes reported through test cases and node labels,
// never through this type.
type ErrorKind int

const (
	// UnsupportedSyntax: an AST node of unknown statement or expression kind.
	UnsupportedSyntax ErrorKind = iota
	// UndefinedVariable: a name was referenced before being bound.
	UndefinedVariable
	// InternalInvariant: a cursor or environment invariant was violated.
	InternalInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case UnsupportedSyntax:
		return "UnsupportedSyntax"
	case UndefinedVariable:
		return "UndefinedVariable"
	case InternalInvariant:
		return "InternalInvariant"
	default:
		return "UnknownErrorKind"
	}
}

// Error is the fatal-error type returned by every package in this
// module. Traversal aborts as soon as one is produced; there are no
// partial-graph guarantees past that point.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an *Error of the given kind.
func Errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind, wrapping a lower-level cause.
func Wrap(kind ErrorKind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}
