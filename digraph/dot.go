package digraph

import (
	"fmt"
	"io"
	"os"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// node is the registry entry for a declared graph node. UpdateNode on
// an id that AddNode has not declared yet creates a placeholder entry
// that a later AddNode call fills in. AddEdge only records the edge and
// does not enter either endpoint into the registry.
type node struct {
	label string
	shape string
	style string
}

type edge struct {
	parentID, childID int
	tailLabel         string
}

// DotRenderer renders the explored state space as GraphViz DOT text.
// It keeps nodes in a treemap so iteration before emission is always
// in ascending id order, regardless of declaration order.
type DotRenderer struct {
	// Title is the graph's label, shown above the rendered state space.
	Title string
	// EdgeColor and ArrowHead are the default GraphViz edge attributes
	// applied to every edge in the document.
	EdgeColor string
	ArrowHead string

	nodes *treemap.Map // int -> *node, ordered by utils.IntComparator
	edges []edge
}

// DefaultTitle is the graph label a DotRenderer carries unless overridden.
const DefaultTitle = "State Space of Code"

// DefaultEdgeColor and DefaultArrowHead are the edge attribute defaults
// a DotRenderer carries unless overridden.
const (
	DefaultEdgeColor = "red"
	DefaultArrowHead = "normal"
)

// NewDotRenderer returns an empty DOT renderer with the default title
// and edge styling.
func NewDotRenderer() *DotRenderer {
	return &DotRenderer{
		Title:     DefaultTitle,
		EdgeColor: DefaultEdgeColor,
		ArrowHead: DefaultArrowHead,
		nodes:     treemap.NewWith(utils.IntComparator),
	}
}

func (r *DotRenderer) entry(id int) *node {
	if v, found := r.nodes.Get(id); found {
		return v.(*node)
	}
	n := &node{}
	r.nodes.Put(id, n)
	return n
}

// AddNode is part of Renderer.
func (r *DotRenderer) AddNode(id int, label, shape, style string) {
	n := r.entry(id)
	n.label, n.shape, n.style = label, shape, style
	tracer().Debugf("node %d declared: shape=%s style=%s", id, shape, style)
}

// UpdateNode is part of Renderer.
func (r *DotRenderer) UpdateNode(id int, label string) {
	r.entry(id).label = label
}

// AddEdge is part of Renderer.
func (r *DotRenderer) AddEdge(parentID, childID int, tailLabel string) {
	r.edges = append(r.edges, edge{parentID: parentID, childID: childID, tailLabel: tailLabel})
}

// Draw writes the accumulated graph as DOT text to path, or to stdout
// when path is empty.
func (r *DotRenderer) Draw(path string) error {
	w := io.Writer(os.Stdout)
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}
	return r.WriteTo(w)
}

// WriteTo emits the DOT document directly to w, in ascending node-id order.
func (r *DotRenderer) WriteTo(w io.Writer) error {
	if _, err := io.WriteString(w, "digraph G {\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  graph [label=%q];\n", r.Title); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "  node [fontname=\"Helvetica\",fontsize=10];\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  edge [fontname=\"Helvetica\",fontsize=9,color=%q,arrowhead=%q];\n",
		r.EdgeColor, r.ArrowHead); err != nil {
		return err
	}
	it := r.nodes.Iterator()
	for it.Next() {
		id := it.Key().(int)
		n := it.Value().(*node)
		shape := n.shape
		if shape == "" {
			shape = ShapeOval
		}
		if _, err := fmt.Fprintf(w, "  %d [label=%s,shape=%s,style=%q];\n", id, n.label, shape, n.style); err != nil {
			return err
		}
	}
	for _, e := range r.edges {
		if e.tailLabel == "" {
			if _, err := fmt.Fprintf(w, "  %d -> %d;\n", e.parentID, e.childID); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "  %d -> %d [taillabel=%q,labeldistance=2,labelangle=0,labelfontcolor=\"Blue\"];\n",
			e.parentID, e.childID, e.tailLabel); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}
