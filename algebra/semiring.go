package algebra

// Semiring pairs an additive Monoid with a multiplicative BinaryOp, giving
// mxm/mxv/vxm (package kernel) the two operators they fold over the shared
// index in A(i,k)*B(k,j): z = add(z, mul(a, b)). Mul.ZCode must equal
// Add.Op's operand type; NewSemiring enforces this.
type Semiring struct {
	Add Monoid
	Mul *BinaryOp
}

// NewSemiring validates that mul's output feeds add's domain and returns the
// assembled Semiring. This is the construction path user-defined semirings
// must go through; the built-in registry functions below call it internally.
func NewSemiring(add Monoid, mul *BinaryOp) (Semiring, error) {
	if add.Op == nil || mul == nil {
		return Semiring{}, algebraErrorf("NewSemiring", ErrNilOperator)
	}
	if mul.ZCode != add.Op.XCode || mul.ZCode != add.Op.YCode {
		return Semiring{}, algebraErrorf("NewSemiring", ErrBadSemiring)
	}

	return Semiring{Add: add, Mul: mul}, nil
}

// mustSemiring builds a built-in semiring and panics on error; every call
// site below pairs operators whose codes are constructed to match, so a
// failure indicates a bug in this file.
func mustSemiring(add Monoid, mul *BinaryOp) Semiring {
	sr, err := NewSemiring(add, mul)
	if err != nil {
		panic(err)
	}
	return sr
}

// PlusTimesSemiring is the classical (+, x) semiring used for ordinary
// matrix multiplication and path-counting over code.
func PlusTimesSemiring(code Code) Semiring {
	return mustSemiring(PlusMonoid(code), TimesOp(code))
}

// MinPlusSemiring is the tropical semiring (min, +) used for shortest-path
// style computations; identity is code's maximum value, standing in for
// infinity, per spec §3.
func MinPlusSemiring(code Code) Semiring {
	return mustSemiring(MinMonoid(code), PlusOp(code))
}

// MaxPlusSemiring is the dual tropical semiring (max, +) used for
// longest-path / bottleneck style computations.
func MaxPlusSemiring(code Code) Semiring {
	return mustSemiring(MaxMonoid(code), PlusOp(code))
}

// MinTimesSemiring is (min, x), used for bottleneck-capacity style
// reductions over non-negative weights.
func MinTimesSemiring(code Code) Semiring {
	return mustSemiring(MinMonoid(code), TimesOp(code))
}

// MaxTimesSemiring is (max, x).
func MaxTimesSemiring(code Code) Semiring {
	return mustSemiring(MaxMonoid(code), TimesOp(code))
}

// LorLandSemiring is the Boolean semiring (LOR, LAND) used for reachability
// and transitive-closure style computations over Bool matrices.
func LorLandSemiring() Semiring {
	return mustSemiring(LorMonoid(), LogicalAndOp())
}

// LandLorSemiring is the dual Boolean semiring (LAND, LOR).
func LandLorSemiring() Semiring {
	return mustSemiring(LandMonoid(), LogicalOrOp())
}

// PlusFirstSemiring is (+, FIRST), useful for masked row/column counting
// where the right operand's value is irrelevant.
func PlusFirstSemiring(code Code) Semiring {
	return mustSemiring(PlusMonoid(code), FirstOp(code))
}

// PlusSecondSemiring is (+, SECOND), the dual of PlusFirstSemiring.
func PlusSecondSemiring(code Code) Semiring {
	return mustSemiring(PlusMonoid(code), SecondOp(code))
}
