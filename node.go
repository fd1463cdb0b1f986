package halfwaytree

import (
	"github.com/sudouser2010/halfwaytree/digraph"
	"github.com/sudouser2010/halfwaytree/symstate"
)

// Node is one record of the exploration node tree: the design output
// of a traversal. Ownership is strictly hierarchical; a child belongs
// to exactly one parent.
type Node struct {
	ID       int
	Kind     digraph.NodeKind
	Label    string
	State    *symstate.State
	Children []*Node
}
