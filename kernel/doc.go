// Package kernel implements the engine's Layer L0 primitive kernels (spec
// §2, §4.1, §4.3-§4.6): per-semiring multiply-add, per-monoid reduce,
// per-unary apply, and per-selector predicate, each operating over
// contiguous typed buffers addressed through algebra's byte-level Apply
// functions, with a typed fast path for the most common built-in
// combination (package dispatch) substituted in wherever it applies.
//
// Every kernel in this package is a pure function over its inputs: it
// never mutates an operand Matrix and never performs masking, accumulation
// or in-place replacement — those are Layer L2 concerns implemented by
// package ops, which calls into this package for the raw compute and then
// merges the result into a destination under a mask/accum/replace/
// descriptor (spec §4.7).
package kernel
