// Package sparse implements the core sparse-matrix storage model: a
// compressed sparse vector-of-vectors (CSC when column-oriented, CSR when
// row-oriented), optional hypersparse indirection for matrices whose
// populated-vector count is small relative to their dimension, a pending
// tuple queue for deferred SetElement/assign updates, and zombie markers
// for deferred deletion.
//
// What & Why:
//
//	A Matrix never rewrites its compressed arrays on every mutation. Instead,
//	SetElement and deletions enqueue pending tuples and zombie markers; the
//	compressed p/i/x arrays are only rebuilt when Wait is called (explicitly,
//	or implicitly by any read that needs a materialized view). This mirrors
//	the reference engine's separation between "logical" and "physical" state:
//	many small updates amortize into one O(nz log nz) rebuild instead of many
//	O(nz) array shifts.
//
// Layout:
//
//	A column-oriented (ByCol) Matrix of NCols columns stores, per populated
//	column k: p[k] and p[k+1] bound the half-open slice of i/x holding that
//	column's entries, sorted by row index. A row-oriented (ByRow) Matrix is
//	the transposed layout: everything below applies with "row" and "column"
//	exchanged. Hypersparse matrices add an h array: h[k] is the real
//	column (or row) index of the k-th populated vector, and p/i/x are
//	indexed by k instead of by the raw dimension index, so a matrix with far
//	fewer populated vectors than its dimension does not pay for p's
//	O(dimension) length.
package sparse
