// Package ast defines the typed syntax tree for the toy imperative
// language this engine explores, together with a lexer and parser that
// turn source text into that tree.
//
// The grammar is deliberately small: assignment, an if with an
// indented then-body (ifs may nest), print, assert, and a trailing synthetic
// terminal statement appended before traversal. There are no loops,
// functions or data structures beyond scalar integers.
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'halfwaytree.ast'.
func tracer() tracing.Trace {
	return tracing.Select("halfwaytree.ast")
}
