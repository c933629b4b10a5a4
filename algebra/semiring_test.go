package algebra_test

import (
	"testing"
	"unsafe"

	"github.com/srki/GraphBLAS/algebra"
	"github.com/stretchr/testify/require"
)

func TestNewSemiring_DomainMismatchRejected(t *testing.T) {
	t.Parallel()

	add := algebra.PlusMonoid(algebra.FP64)
	mul := algebra.TimesOp(algebra.Int32)

	_, err := algebra.NewSemiring(add, mul)
	require.ErrorIs(t, err, algebra.ErrBadSemiring)
}

func TestNewSemiring_NilOperator(t *testing.T) {
	t.Parallel()

	_, err := algebra.NewSemiring(algebra.Monoid{}, nil)
	require.ErrorIs(t, err, algebra.ErrNilOperator)
}

func TestPlusTimesSemiring_Int32(t *testing.T) {
	t.Parallel()

	sr := algebra.PlusTimesSemiring(algebra.Int32)

	mulFn, ok := algebra.AsBinaryFunc[int32](sr.Mul)
	require.True(t, ok)
	require.Equal(t, int32(12), mulFn(3, 4))

	addFn, ok := algebra.AsBinaryFunc[int32](sr.Add.Op)
	require.True(t, ok)
	require.Equal(t, int32(7), addFn(3, 4))
}

func TestMinPlusSemiring_IdentityIsMax(t *testing.T) {
	t.Parallel()

	sr := algebra.MinPlusSemiring(algebra.FP64)

	id, err := algebra.DecodeScalar(algebra.FP64, sr.Add.Identity)
	require.NoError(t, err)
	require.InDelta(t, 1.7976931348623157e+308, id.(float64), 1e290)

	var z, x, y float64 = 0, 2, 3
	sr.Mul.Apply(unsafe.Pointer(&z), unsafe.Pointer(&x), unsafe.Pointer(&y))
	require.Equal(t, float64(5), z)
}

func TestLorLandSemiring_BooleanReachability(t *testing.T) {
	t.Parallel()

	sr := algebra.LorLandSemiring()

	var z, x, y bool
	x, y = true, true
	sr.Mul.Apply(unsafe.Pointer(&z), unsafe.Pointer(&x), unsafe.Pointer(&y))
	require.True(t, z)

	var acc bool
	sr.Add.Op.Apply(unsafe.Pointer(&acc), unsafe.Pointer(&acc), unsafe.Pointer(&z))
	require.True(t, acc)
}
