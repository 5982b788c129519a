package rrbtree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rrbtree'. Tracing is diagnostic only: it never
// gates control flow, and is safe to leave unconfigured (a nil-adapter
// tracer swallows calls).
func tracer() tracing.Trace {
	return tracing.Select("rrbtree")
}
