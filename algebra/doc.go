// Package algebra defines the algebraic building blocks of the engine:
// built-in type codes, unary and binary operators, monoids, and semirings.
//
// Operators and algebraic objects are not mutated once constructed and are
// shared by handle (a *UnaryOp or *BinaryOp pointer; Monoid and Semiring
// are small structs passed by value) across every matrix operation that
// references them. A UnaryOp, BinaryOp,
// Monoid, or Semiring must outlive every in-flight operation using it; the
// package places no lifetime management on top of ordinary Go garbage
// collection since operators carry no external resources.
//
// Every built-in operator exposes two faces: a fast, Go-generic closure used
// by the specialized kernels in package kernel (picked by exact type match),
// and a byte-level Apply function operating on raw storage through
// unsafe.Pointer, used by the generic fallback path and by user-defined
// operators. The byte-level face is what package sparse's Matrix.x storage
// is built around, so that a value move is always memcpy-shaped regardless
// of whether the operator is built-in or user-defined.
package algebra
