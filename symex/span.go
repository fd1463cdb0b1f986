package symex

import "fmt"

// Span captures a length of input run, (x…y): a start position and the
// position just behind the end. Used by the lexer/parser to tag tokens
// and statements with their source extent.
type Span [2]int

// From returns the start value of a span.
func (s Span) From() int { return s[0] }

// To returns the end value of a span.
func (s Span) To() int { return s[1] }

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
