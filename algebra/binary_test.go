package algebra_test

import (
	"testing"
	"unsafe"

	"github.com/srki/GraphBLAS/algebra"
	"github.com/stretchr/testify/require"
)

func applyInt32(t *testing.T, op *algebra.BinaryOp, x, y int32) int32 {
	t.Helper()

	var z int32
	op.Apply(unsafe.Pointer(&z), unsafe.Pointer(&x), unsafe.Pointer(&y))
	return z
}

func TestPlusOp_Int32(t *testing.T) {
	t.Parallel()

	op := algebra.PlusOp(algebra.Int32)
	require.NotNil(t, op)
	require.Equal(t, int32(7), applyInt32(t, op, 3, 4))

	fn, ok := algebra.AsBinaryFunc[int32](op)
	require.True(t, ok)
	require.Equal(t, int32(7), fn(3, 4))
}

func TestMinMaxOp_FP64(t *testing.T) {
	t.Parallel()

	minOp := algebra.MinOp(algebra.FP64)
	maxOp := algebra.MaxOp(algebra.FP64)

	fnMin, ok := algebra.AsBinaryFunc[float64](minOp)
	require.True(t, ok)
	require.Equal(t, 1.5, fnMin(1.5, 2.5))

	fnMax, ok := algebra.AsBinaryFunc[float64](maxOp)
	require.True(t, ok)
	require.Equal(t, 2.5, fnMax(1.5, 2.5))
}

func TestFirstSecondOp_UnsupportedCode(t *testing.T) {
	t.Parallel()

	require.Nil(t, algebra.FirstOp(algebra.UInt8))
	require.Nil(t, algebra.SecondOp(algebra.Bool))
}

func TestLogicalOps(t *testing.T) {
	t.Parallel()

	lor := algebra.LogicalOrOp()
	land := algebra.LogicalAndOp()
	lxor := algebra.LogicalXorOp()

	fnOr, ok := algebra.AsBinaryFunc[bool](lor)
	require.True(t, ok)
	require.True(t, fnOr(false, true))

	fnAnd, ok := algebra.AsBinaryFunc[bool](land)
	require.True(t, ok)
	require.False(t, fnAnd(false, true))

	fnXor, ok := algebra.AsBinaryFunc[bool](lxor)
	require.True(t, ok)
	require.True(t, fnXor(false, true))
	require.False(t, fnXor(true, true))
}

func TestComparators_ResultIsBool(t *testing.T) {
	t.Parallel()

	gt := algebra.GtOp(algebra.Int64)
	require.Equal(t, algebra.Bool, gt.ZCode)

	fn, ok := algebra.AsComparatorFunc[int64](gt)
	require.True(t, ok)
	require.True(t, fn(5, 3))
	require.False(t, fn(3, 5))

	le := algebra.LeOp(algebra.UInt64)
	fnLe, ok := algebra.AsComparatorFunc[uint64](le)
	require.True(t, ok)
	require.True(t, fnLe(3, 3))
	require.False(t, fnLe(4, 3))
}

func TestComparators_NoFloatBridgeForInt64(t *testing.T) {
	t.Parallel()

	// A value beyond float64's exact integer range must still compare
	// correctly: comparators operate on the native type, never float64.
	const big = int64(1) << 62
	gt := algebra.GtOp(algebra.Int64)
	fn, ok := algebra.AsComparatorFunc[int64](gt)
	require.True(t, ok)
	require.True(t, fn(big+1, big))
}
