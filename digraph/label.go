package digraph

import (
	"strconv"
	"strings"
)

// LabelOptions controls the cosmetic rendering rules applied to a node
// label before it is handed to the renderer.
type LabelOptions struct {
	ShowNodeID  bool
	NodeID      int
	IsTerminal  bool
	UseHTMLLike bool
}

// Label applies the node-id prefix, the terminal "Test Cases" prefix,
// and (if enabled) the bracket-to-tag HTML-like rewriting, in that order.
func Label(statement string, opts LabelOptions) string {
	s := statement
	if opts.ShowNodeID {
		s = "Node " + strconv.Itoa(opts.NodeID) + ":\n" + s
	}
	if opts.IsTerminal {
		s = "Test Cases \n" + s
	}
	if opts.UseHTMLLike {
		s = htmlLikeMarkup(s)
	}
	return "<" + s + ">"
}

// htmlLikeMarkup escapes literal angle brackets, then rewrites the
// pseudo-markup delimiters '[' and ']' into '<' and '>' so that tags
// such as [font color='red']...[/font] become real HTML-like tags.
func htmlLikeMarkup(s string) string {
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "[", "<")
	s = strings.ReplaceAll(s, "]", ">")
	s = strings.ReplaceAll(s, "\n", "<br/>")
	return s
}

// ColorTag wraps text in the bracket pseudo-markup for a font color,
// e.g. ColorTag("blue", "any input") -> "[font color='blue']any input[/font]".
func ColorTag(color, text string) string {
	return "[font color='" + color + "']" + text + "[/font]"
}
