package algebra_test

import (
	"testing"

	"github.com/srki/GraphBLAS/algebra"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeScalar_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code algebra.Code
		v    any
	}{
		{algebra.Bool, true},
		{algebra.Int8, int8(-12)},
		{algebra.UInt8, uint8(200)},
		{algebra.Int16, int16(-3000)},
		{algebra.UInt16, uint16(60000)},
		{algebra.Int32, int32(-70000)},
		{algebra.UInt32, uint32(4000000000)},
		{algebra.Int64, int64(-1) << 40},
		{algebra.UInt64, uint64(1) << 63},
		{algebra.FP32, float32(3.5)},
		{algebra.FP64, float64(2.718281828)},
	}

	for _, tc := range cases {
		buf, err := algebra.EncodeScalar(tc.code, tc.v)
		require.NoError(t, err)
		require.Len(t, buf, tc.code.Size())

		got, err := algebra.DecodeScalar(tc.code, buf)
		require.NoError(t, err)
		require.Equal(t, tc.v, got)
	}
}

func TestEncodeScalar_DomainMismatch(t *testing.T) {
	t.Parallel()

	_, err := algebra.EncodeScalar(algebra.Bool, "not a bool")
	require.ErrorIs(t, err, algebra.ErrDomainMismatch)
}

func TestEncodeScalar_NumericLiteralCoercion(t *testing.T) {
	t.Parallel()

	// An ordinary int literal must coerce into any numeric code.
	buf, err := algebra.EncodeScalar(algebra.FP64, 7)
	require.NoError(t, err)

	got, err := algebra.DecodeScalar(algebra.FP64, buf)
	require.NoError(t, err)
	require.Equal(t, float64(7), got)
}

func TestEncodeScalar_UserDefinedPassthrough(t *testing.T) {
	t.Parallel()

	raw := []byte{1, 2, 3, 4, 5}
	buf, err := algebra.EncodeScalar(algebra.UserDefined, raw)
	require.NoError(t, err)
	require.Equal(t, raw, buf)

	// The returned buffer must be an independent copy.
	buf[0] = 9
	require.Equal(t, byte(1), raw[0])
}

func TestDecodeScalar_WrongLength(t *testing.T) {
	t.Parallel()

	_, err := algebra.DecodeScalar(algebra.Int64, []byte{1, 2, 3})
	require.ErrorIs(t, err, algebra.ErrDomainMismatch)
}
