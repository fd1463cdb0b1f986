package digraph

import (
	"strings"
	"testing"
)

func TestDotRendererWriteToOrdersNodesById(t *testing.T) {
	r := NewDotRenderer()
	r.AddNode(2, "<b>", ShapeOval, StylePlain)
	r.AddNode(0, "<a>", ShapeDiamond, StylePlain)
	r.AddEdge(0, 2, "True")

	var b strings.Builder
	if err := r.WriteTo(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if strings.Index(out, "0 [label=") > strings.Index(out, "2 [label=") {
		t.Fatalf("expected node 0 to be emitted before node 2, got:\n%s", out)
	}
	if !strings.Contains(out, `0 -> 2 [taillabel="True"`) {
		t.Fatalf("expected a labelled edge from 0 to 2, got:\n%s", out)
	}
}

func TestDotRendererToleratesOutOfOrderEdgeBeforeNode(t *testing.T) {
	r := NewDotRenderer()
	r.AddEdge(5, 6, "")
	r.AddNode(5, "<five>", ShapeOval, StylePlain)
	r.AddNode(6, "<six>", ShapeOval, StylePlain)

	var b strings.Builder
	if err := r.WriteTo(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "5 -> 6;") {
		t.Fatalf("expected an unlabelled edge 5 -> 6, got:\n%s", out)
	}
}

func TestDotRendererDefaultTitleAndEdgeStyling(t *testing.T) {
	r := NewDotRenderer()
	var b strings.Builder
	if err := r.WriteTo(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, `graph [label="State Space of Code"]`) {
		t.Fatalf("expected default graph title, got:\n%s", out)
	}
	if !strings.Contains(out, `color="red"`) || !strings.Contains(out, `arrowhead="normal"`) {
		t.Fatalf("expected default edge color/arrowhead, got:\n%s", out)
	}
}

func TestDotRendererCustomTitleAndEdgeStyling(t *testing.T) {
	r := NewDotRenderer()
	r.Title = "Custom Title"
	r.EdgeColor = "blue"
	r.ArrowHead = "vee"

	var b strings.Builder
	if err := r.WriteTo(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, `graph [label="Custom Title"]`) {
		t.Fatalf("expected overridden graph title, got:\n%s", out)
	}
	if !strings.Contains(out, `color="blue"`) || !strings.Contains(out, `arrowhead="vee"`) {
		t.Fatalf("expected overridden edge color/arrowhead, got:\n%s", out)
	}
}

func TestDotRendererEmptyShapeDefaultsToOval(t *testing.T) {
	r := NewDotRenderer()
	r.entry(1) // simulate a registry entry with no AddNode call, as UpdateNode creates

	var b strings.Builder
	if err := r.WriteTo(&b); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "1 [label=,shape=oval") {
		t.Fatalf("expected default oval shape, got:\n%s", b.String())
	}
}
