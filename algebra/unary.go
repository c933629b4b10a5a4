package algebra

import "unsafe"

// UnaryOp is an immutable unary operator z = op(x), used by select-free
// Apply (spec §4.6) and by select predicates that need a value transform
// before comparison. Apply reads one XCode-sized value from x and writes one
// ZCode-sized value to z.
type UnaryOp struct {
	Name         string
	Opcode       Opcode
	XCode, ZCode Code
	Apply        func(z, x unsafe.Pointer)

	typed any
}

func wrapUnary[T Numeric](code Code, name string, opcode Opcode, fn func(x T) T) *UnaryOp {
	return &UnaryOp{
		Name:   name,
		Opcode: opcode,
		XCode:  code,
		ZCode:  code,
		Apply: func(z, x unsafe.Pointer) {
			*(*T)(z) = fn(*(*T)(x))
		},
		typed: fn,
	}
}

// AsUnaryFunc type-asserts op's typed closure back to func(x T) T.
func AsUnaryFunc[T Numeric](op *UnaryOp) (fn func(x T) T, ok bool) {
	fn, ok = op.typed.(func(x T) T)
	return fn, ok
}

func identityFn[T Numeric](x T) T        { return x }
func additiveInverseFn[T Numeric](x T) T { return -x }
func oneFn[T Numeric](x T) T             { var zero T; return zero + 1 }
func logicalNotFn(x bool) bool           { return !x }

// IdentityOp returns the identity unary operator for code.
func IdentityOp(code Code) *UnaryOp {
	switch code {
	case Int8:
		return wrapUnary(code, "IDENTITY", OpIdentity, identityFn[int8])
	case UInt8:
		return wrapUnary(code, "IDENTITY", OpIdentity, identityFn[uint8])
	case Int16:
		return wrapUnary(code, "IDENTITY", OpIdentity, identityFn[int16])
	case UInt16:
		return wrapUnary(code, "IDENTITY", OpIdentity, identityFn[uint16])
	case Int32:
		return wrapUnary(code, "IDENTITY", OpIdentity, identityFn[int32])
	case UInt32:
		return wrapUnary(code, "IDENTITY", OpIdentity, identityFn[uint32])
	case Int64:
		return wrapUnary(code, "IDENTITY", OpIdentity, identityFn[int64])
	case UInt64:
		return wrapUnary(code, "IDENTITY", OpIdentity, identityFn[uint64])
	case FP32:
		return wrapUnary(code, "IDENTITY", OpIdentity, identityFn[float32])
	case FP64:
		return wrapUnary(code, "IDENTITY", OpIdentity, identityFn[float64])
	case Bool:
		return &UnaryOp{
			Name: "IDENTITY", Opcode: OpIdentity, XCode: Bool, ZCode: Bool,
			Apply: func(z, x unsafe.Pointer) { *(*bool)(z) = *(*bool)(x) },
			typed: func(x bool) bool { return x },
		}
	default:
		return nil
	}
}

// AdditiveInverseOp returns AINV (unary negation) for the given signed or
// floating-point code; nil for unsigned/boolean codes, which have none.
func AdditiveInverseOp(code Code) *UnaryOp {
	switch code {
	case Int8:
		return wrapUnary(code, "AINV", OpAdditiveInverse, additiveInverseFn[int8])
	case Int16:
		return wrapUnary(code, "AINV", OpAdditiveInverse, additiveInverseFn[int16])
	case Int32:
		return wrapUnary(code, "AINV", OpAdditiveInverse, additiveInverseFn[int32])
	case Int64:
		return wrapUnary(code, "AINV", OpAdditiveInverse, additiveInverseFn[int64])
	case FP32:
		return wrapUnary(code, "AINV", OpAdditiveInverse, additiveInverseFn[float32])
	case FP64:
		return wrapUnary(code, "AINV", OpAdditiveInverse, additiveInverseFn[float64])
	default:
		return nil
	}
}

// LogicalNotOp returns LNOT over Bool.
func LogicalNotOp() *UnaryOp {
	return &UnaryOp{
		Name:   "LNOT",
		Opcode: OpLogicalNot,
		XCode:  Bool,
		ZCode:  Bool,
		Apply: func(z, x unsafe.Pointer) {
			*(*bool)(z) = !*(*bool)(x)
		},
		typed: logicalNotFn,
	}
}

// OneOp returns the constant-1 unary operator for the given built-in numeric
// code (used as the multiplicative unit in e.g. counting semirings).
func OneOp(code Code) *UnaryOp {
	switch code {
	case Int32:
		return wrapUnary(code, "ONE", OpOne, oneFn[int32])
	case Int64:
		return wrapUnary(code, "ONE", OpOne, oneFn[int64])
	case FP32:
		return wrapUnary(code, "ONE", OpOne, oneFn[float32])
	case FP64:
		return wrapUnary(code, "ONE", OpOne, oneFn[float64])
	default:
		return nil
	}
}
