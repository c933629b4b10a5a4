package dispatch

import (
	"errors"

	"github.com/srki/GraphBLAS/algebra"
)

// ErrNoValue is the internal "kernel not applicable" signal of spec §4.2 /
// §7: it tells an orchestrator to fall back to the generic path. It is a
// local, recovered control-flow signal and must never be returned from a
// package ops or package grb public entry point.
var ErrNoValue = errors.New("dispatch: no specialized worker for this (opcode, type) pair")

// Key is the dispatch key of spec §4.2: an operator's Opcode paired with
// the type Code it would be instantiated over.
type Key struct {
	Op   algebra.Opcode
	Code algebra.Code
}

// Specializable reports whether op/code names a combination this package's
// switch factory will ever special-case: a built-in opcode (not
// algebra.OpUserDefined) applied to a built-in type Code (not
// algebra.UserDefined). A user-defined operator or type always forces the
// generic path per spec §4.2 step 4, regardless of which of the two is
// user-defined.
func Specializable(op algebra.Opcode, code algebra.Code) bool {
	return op != algebra.OpUserDefined && code.IsBuiltin()
}

// RequiresCast reports whether applying op to operands of fromCode and
// producing toCode requires a typecast, i.e. whether the operator's own
// declared codes already match what the caller has in hand. Per spec
// §4.2 step 4, any true result here forces the generic worker
// unconditionally, even if Specializable would otherwise allow a fast
// path.
func RequiresCast(opXCode, opYCode, opZCode, fromXCode, fromYCode, toZCode algebra.Code) bool {
	return opXCode != fromXCode || opYCode != fromYCode || opZCode != toZCode
}

// TryBinary recovers op's native Go closure for exactly the built-in type
// T, succeeding only when op.XCode == op.YCode == op.ZCode == the Code
// matching T and op was constructed through algebra's wrapBinary family
// (every built-in arithmetic BinaryOp is; the Bool-valued comparators and
// any user-defined operator are not). Callers call TryBinary[T] once per
// built-in type they hand-specialize; see kernel.NewMAdd for the canonical
// use.
func TryBinary[T algebra.Numeric](op *algebra.BinaryOp) (fn func(x, y T) T, ok bool) {
	if op == nil || !Specializable(op.Opcode, op.ZCode) {
		return nil, false
	}
	return algebra.AsBinaryFunc[T](op)
}

// TryUnary is TryBinary's counterpart for UnaryOp.
func TryUnary[T algebra.Numeric](op *algebra.UnaryOp) (fn func(x T) T, ok bool) {
	if op == nil || !Specializable(op.Opcode, op.ZCode) {
		return nil, false
	}
	return algebra.AsUnaryFunc[T](op)
}
