// Package ops implements the Level-1 operation orchestrators of spec §4:
// mxm, ewise_add/ewise_mult, reduce_scalar, apply, select, transpose, and
// the supplemented assign family. Every orchestrator follows the same
// shape: validate at the entry (spec §7 — "type and dimension mismatches
// are detected at the orchestrator entry before any allocation"), align
// orientation and materialize operands, dispatch to the right package
// kernel primitive (choosing among mxm's three algorithms where the
// Descriptor allows AUTO), and merge the freshly computed T into the
// caller's C via Level-2 mask/accum semantics (accum.go, spec §4.7) before
// ever mutating C.
package ops
