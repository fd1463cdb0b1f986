package config

import (
	"github.com/npillmayer/schuko/gconf"
)

// Options are the five switches the spec's external interface enumerates.
type Options struct {
	// CreateVisual drives the renderer at all.
	CreateVisual bool
	// ShowUnmutatedConstraints renders an If's source-form condition
	// rather than its substituted symbolic form.
	ShowUnmutatedConstraints bool
	// ShowNodeID prefixes labels with "Node k:".
	ShowNodeID bool
	// UseHTMLLikeLabel enables the bracket-to-tag rewriting.
	UseHTMLLikeLabel bool
	// OnlyShowFeasiblePaths suppresses UNSAT nodes, their subtrees,
	// and the False test-case entry.
	OnlyShowFeasiblePaths bool
}

// Default returns the engine's out-of-the-box option set: visuals on,
// substituted constraints, no id prefixes, no HTML-like labels, every
// path (including infeasible ones) shown.
func Default() Options {
	return Options{
		CreateVisual:             true,
		ShowUnmutatedConstraints: false,
		ShowNodeID:               false,
		UseHTMLLikeLabel:         false,
		OnlyShowFeasiblePaths:    false,
	}
}

// gconf key names, namespaced under "halfwaytree.".
const (
	keyCreateVisual             = "halfwaytree.create-visual"
	keyShowUnmutatedConstraints = "halfwaytree.show-unmutated-constraints"
	keyShowNodeID               = "halfwaytree.show-node-id"
	keyUseHTMLLikeLabel         = "halfwaytree.use-html-like-label"
	keyOnlyShowFeasiblePaths    = "halfwaytree.only-show-feasible-paths"
)

// FromGConf reads the five options out of the global gconf
// configuration on top of def: a key that gconf reports as true
// switches its option on, and any other key keeps def's value. Since
// gconf.GetBool returns false both for an unset key and for a key set
// to false, FromGConf can turn an option on but never turns one off.
func FromGConf(def Options) Options {
	opts := def
	if gconf.GetBool(keyCreateVisual) {
		opts.CreateVisual = true
	}
	if gconf.GetBool(keyShowUnmutatedConstraints) {
		opts.ShowUnmutatedConstraints = true
	}
	if gconf.GetBool(keyShowNodeID) {
		opts.ShowNodeID = true
	}
	if gconf.GetBool(keyUseHTMLLikeLabel) {
		opts.UseHTMLLikeLabel = true
	}
	if gconf.GetBool(keyOnlyShowFeasiblePaths) {
		opts.OnlyShowFeasiblePaths = true
	}
	tracer().Infof("configuration resolved: %+v", opts)
	return opts
}
