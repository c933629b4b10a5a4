package algebra_test

import (
	"testing"

	"github.com/srki/GraphBLAS/algebra"
	"github.com/stretchr/testify/require"
)

func TestCast_IdentitySameCode(t *testing.T) {
	t.Parallel()

	fn, err := algebra.Cast(algebra.Int32, algebra.Int32)
	require.NoError(t, err)

	src, err := algebra.EncodeScalar(algebra.Int32, int32(42))
	require.NoError(t, err)
	dst := make([]byte, algebra.Int32.Size())
	fn(dst, src)

	got, err := algebra.DecodeScalar(algebra.Int32, dst)
	require.NoError(t, err)
	require.Equal(t, int32(42), got)
}

func TestCast_IntToFloat(t *testing.T) {
	t.Parallel()

	fn, err := algebra.Cast(algebra.Int32, algebra.FP64)
	require.NoError(t, err)

	src, err := algebra.EncodeScalar(algebra.Int32, int32(-7))
	require.NoError(t, err)
	dst := make([]byte, algebra.FP64.Size())
	fn(dst, src)

	got, err := algebra.DecodeScalar(algebra.FP64, dst)
	require.NoError(t, err)
	require.Equal(t, float64(-7), got)
}

func TestCast_BoolToNumericAndBack(t *testing.T) {
	t.Parallel()

	toInt, err := algebra.Cast(algebra.Bool, algebra.Int32)
	require.NoError(t, err)

	src, err := algebra.EncodeScalar(algebra.Bool, true)
	require.NoError(t, err)
	dst := make([]byte, algebra.Int32.Size())
	toInt(dst, src)

	got, err := algebra.DecodeScalar(algebra.Int32, dst)
	require.NoError(t, err)
	require.Equal(t, int32(1), got)

	toBool, err := algebra.Cast(algebra.Int32, algebra.Bool)
	require.NoError(t, err)
	back := make([]byte, algebra.Bool.Size())
	toBool(back, dst)

	gotBool, err := algebra.DecodeScalar(algebra.Bool, back)
	require.NoError(t, err)
	require.Equal(t, true, gotBool)
}

func TestCast_UserDefinedRejected(t *testing.T) {
	t.Parallel()

	_, err := algebra.Cast(algebra.UserDefined, algebra.Int32)
	require.ErrorIs(t, err, algebra.ErrUnsupportedCast)

	_, err = algebra.Cast(algebra.Int32, algebra.UserDefined)
	require.ErrorIs(t, err, algebra.ErrUnsupportedCast)
}
