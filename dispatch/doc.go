// Package dispatch implements the "switch factory" of spec §4.2: given an
// operator's Opcode and the type Code(s) it is being applied to, decide
// whether a specialized, monomorphized worker exists or whether the
// caller must fall back to the generic byte-level path.
//
// What & Why:
//
//	The source this engine is modeled on materializes one compiled function
//	per (opcode, type) pair at build time via code generation (spec §9). Go
//	has no equivalent preprocessing step in this codebase, so the same
//	two-tier shape is reproduced with generics instead: TryBinary[T] and
//	TryUnary[T] recover a operator's already-built native Go closure
//	(algebra.AsBinaryFunc / AsUnaryFunc) for exactly one built-in type T, and
//	Decide tells a caller which built-in T (if any) it should instantiate
//	that generic call with. A caller that cannot find a match — a
//	user-defined operator (forced via algebra.OpUserDefined), a type
//	mismatch requiring a cast, or a Code this package does not special-case
//	— falls through to the operator's Apply byte-pointer form, which always
//	works but pays for an indirect call per element.
package dispatch
