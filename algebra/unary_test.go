package algebra_test

import (
	"testing"
	"unsafe"

	"github.com/srki/GraphBLAS/algebra"
	"github.com/stretchr/testify/require"
)

func TestIdentityOp_AllBuiltinCodes(t *testing.T) {
	t.Parallel()

	for _, code := range []algebra.Code{
		algebra.Bool, algebra.Int8, algebra.UInt8, algebra.Int16, algebra.UInt16,
		algebra.Int32, algebra.UInt32, algebra.Int64, algebra.UInt64,
		algebra.FP32, algebra.FP64,
	} {
		op := algebra.IdentityOp(code)
		require.NotNil(t, op, "code %v", code)
		require.Equal(t, code, op.XCode)
		require.Equal(t, code, op.ZCode)
	}
}

func TestAdditiveInverseOp_SignedAndFloatOnly(t *testing.T) {
	t.Parallel()

	require.NotNil(t, algebra.AdditiveInverseOp(algebra.Int32))
	require.NotNil(t, algebra.AdditiveInverseOp(algebra.FP64))
	require.Nil(t, algebra.AdditiveInverseOp(algebra.UInt32))
	require.Nil(t, algebra.AdditiveInverseOp(algebra.Bool))

	op := algebra.AdditiveInverseOp(algebra.Int32)
	var z, x int32 = 0, 5
	op.Apply(unsafe.Pointer(&z), unsafe.Pointer(&x))
	require.Equal(t, int32(-5), z)
}

func TestLogicalNotOp(t *testing.T) {
	t.Parallel()

	op := algebra.LogicalNotOp()
	var z, x bool = false, true
	op.Apply(unsafe.Pointer(&z), unsafe.Pointer(&x))
	require.False(t, z)

	x = false
	op.Apply(unsafe.Pointer(&z), unsafe.Pointer(&x))
	require.True(t, z)
}

func TestOneOp(t *testing.T) {
	t.Parallel()

	op := algebra.OneOp(algebra.FP64)
	require.NotNil(t, op)

	fn, ok := algebra.AsUnaryFunc[float64](op)
	require.True(t, ok)
	require.Equal(t, float64(1), fn(42))

	require.Nil(t, algebra.OneOp(algebra.UInt8))
}
