// Package config holds the engine's typed configuration options and
// bridges them to schuko/gconf, the teacher stack's configuration
// backend, so options can be set from command-line flags, a config
// file or environment variables without the engine depending on any
// of those concerns directly.
package config

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'halfwaytree.config'.
func tracer() tracing.Trace {
	return tracing.Select("halfwaytree.config")
}
