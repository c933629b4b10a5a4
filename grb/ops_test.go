package grb_test

import (
	"context"
	"testing"

	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/grb"
	"github.com/stretchr/testify/require"
)

func newFilled(t *testing.T, code algebra.Code, rows, cols int64, vals map[[2]int64]any) *grb.Matrix {
	t.Helper()
	m, err := grb.NewMatrix(code, rows, cols)
	require.NoError(t, err)
	for rc, v := range vals {
		require.NoError(t, m.SetElement(rc[0], rc[1], v))
	}
	require.NoError(t, m.Wait())
	return m
}

// TestMxm_S1 is spec §8 scenario S1: PLUS_TIMES_FP64, no mask, no accum.
func TestMxm_S1(t *testing.T) {
	t.Parallel()

	e := grb.NewEngine(0)
	defer e.Close()

	A := newFilled(t, algebra.FP64, 2, 2, map[[2]int64]any{
		{0, 0}: 1.0, {0, 1}: 2.0, {1, 1}: 3.0,
	})
	B := newFilled(t, algebra.FP64, 2, 2, map[[2]int64]any{
		{0, 0}: 4.0, {1, 1}: 5.0,
	})
	C, err := grb.NewMatrix(algebra.FP64, 2, 2)
	require.NoError(t, err)

	sr := algebra.PlusTimesSemiring(algebra.FP64)
	require.NoError(t, e.Mxm(grb.Background(), C, nil, nil, sr, A, B))

	want := map[[2]int64]float64{{0, 0}: 4, {0, 1}: 10, {1, 1}: 15}
	for r := int64(0); r < 2; r++ {
		for c := int64(0); c < 2; c++ {
			v, ok, err := C.ExtractElement(r, c)
			require.NoError(t, err)
			if wv, present := want[[2]int64{r, c}]; present {
				require.True(t, ok)
				require.Equal(t, wv, v)
			} else {
				require.False(t, ok)
			}
		}
	}
}

// TestMxm_S2 is spec §8 scenario S2: masked MIN_PLUS over Int32.
func TestMxm_S2(t *testing.T) {
	t.Parallel()

	e := grb.NewEngine(0)
	defer e.Close()

	A := newFilled(t, algebra.Int32, 2, 2, map[[2]int64]any{
		{0, 0}: int32(1), {1, 0}: int32(2), {1, 1}: int32(0),
	})
	B := newFilled(t, algebra.Int32, 2, 2, map[[2]int64]any{
		{0, 0}: int32(0), {0, 1}: int32(3), {1, 1}: int32(1),
	})
	M := newFilled(t, algebra.Bool, 2, 2, map[[2]int64]any{
		{0, 0}: true, {1, 1}: true,
	})
	C, err := grb.NewMatrix(algebra.Int32, 2, 2)
	require.NoError(t, err)

	sr := algebra.MinPlusSemiring(algebra.Int32)
	require.NoError(t, e.Mxm(grb.Background(), C, M, nil, sr, A, B))

	v00, ok, err := C.ExtractElement(0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(1), v00)

	v11, ok, err := C.ExtractElement(1, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(1), v11)

	_, ok, err = C.ExtractElement(0, 1)
	require.NoError(t, err)
	require.False(t, ok)
	_, ok, err = C.ExtractElement(1, 0)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestMxm_MaskEquivalence is spec §8 Testable Property 4: M=None and
// M=all_ones produce the same result.
func TestMxm_MaskEquivalence(t *testing.T) {
	t.Parallel()

	e := grb.NewEngine(0)
	defer e.Close()

	A := newFilled(t, algebra.FP64, 2, 2, map[[2]int64]any{{0, 0}: 1.0, {1, 1}: 2.0})
	B := newFilled(t, algebra.FP64, 2, 2, map[[2]int64]any{{0, 0}: 3.0, {1, 1}: 4.0})
	allOnes := newFilled(t, algebra.Bool, 2, 2, map[[2]int64]any{
		{0, 0}: true, {0, 1}: true, {1, 0}: true, {1, 1}: true,
	})

	sr := algebra.PlusTimesSemiring(algebra.FP64)

	Cnone, err := grb.NewMatrix(algebra.FP64, 2, 2)
	require.NoError(t, err)
	require.NoError(t, e.Mxm(grb.Background(), Cnone, nil, nil, sr, A, B))

	Cmask, err := grb.NewMatrix(algebra.FP64, 2, 2)
	require.NoError(t, err)
	require.NoError(t, e.Mxm(grb.Background(), Cmask, allOnes, nil, sr, A, B))

	for r := int64(0); r < 2; r++ {
		for c := int64(0); c < 2; c++ {
			v1, ok1, err := Cnone.ExtractElement(r, c)
			require.NoError(t, err)
			v2, ok2, err := Cmask.ExtractElement(r, c)
			require.NoError(t, err)
			require.Equal(t, ok1, ok2)
			require.Equal(t, v1, v2)
		}
	}
}

// TestReduceScalar_S3 is spec §8 scenario S3: PLUS over diag([1,2,3,4]).
func TestReduceScalar_S3(t *testing.T) {
	t.Parallel()

	e := grb.NewEngine(0)
	defer e.Close()

	A := newFilled(t, algebra.Int32, 4, 4, map[[2]int64]any{
		{0, 0}: int32(1), {1, 1}: int32(2), {2, 2}: int32(3), {3, 3}: int32(4),
	})

	s, err := e.ReduceScalar(grb.Background(), nil, algebra.Int32, nil, algebra.PlusMonoid(algebra.Int32), A)
	require.NoError(t, err)
	require.Equal(t, int32(10), s)
}

// TestReduceScalar_EmptyIsIdentity is spec §8 Testable Property 2.
func TestReduceScalar_EmptyIsIdentity(t *testing.T) {
	t.Parallel()

	e := grb.NewEngine(0)
	defer e.Close()

	A, err := grb.NewMatrix(algebra.Int32, 4, 4)
	require.NoError(t, err)

	s, err := e.ReduceScalar(grb.Background(), nil, algebra.Int32, nil, algebra.PlusMonoid(algebra.Int32), A)
	require.NoError(t, err)
	require.Equal(t, int32(0), s)

	c, err := e.ReduceScalar(grb.Background(), int32(7), algebra.Int32, algebra.PlusOp(algebra.Int32), algebra.PlusMonoid(algebra.Int32), A)
	require.NoError(t, err)
	require.Equal(t, int32(7), c)
}

// TestReduceScalar_TerminalShortCircuit is spec §8 scenario S4 (scaled
// down): a MAX monoid over UInt8 with its terminal 255 present anywhere
// still yields 255.
func TestReduceScalar_TerminalShortCircuit(t *testing.T) {
	t.Parallel()

	e := grb.NewEngine(0)
	defer e.Close()

	A, err := grb.NewMatrix(algebra.UInt8, 1, 2000)
	require.NoError(t, err)
	for i := int64(0); i < 2000; i++ {
		require.NoError(t, A.SetElement(0, i, uint8(i%200)))
	}
	require.NoError(t, A.SetElement(0, 1000, uint8(255)))
	require.NoError(t, A.Wait())

	s, err := e.ReduceScalar(grb.Background(), nil, algebra.UInt8, nil, algebra.MaxMonoid(algebra.UInt8), A)
	require.NoError(t, err)
	require.Equal(t, uint8(255), s)
}

// TestEwiseAdd_S5 is spec §8 scenario S5: PLUS ewise_add with PLUS accum.
func TestEwiseAdd_S5(t *testing.T) {
	t.Parallel()

	e := grb.NewEngine(0)
	defer e.Close()

	C := newFilled(t, algebra.Int32, 2, 2, map[[2]int64]any{{0, 0}: int32(1), {1, 1}: int32(1)})
	A := newFilled(t, algebra.Int32, 2, 2, map[[2]int64]any{{0, 1}: int32(2), {1, 0}: int32(3)})
	B := newFilled(t, algebra.Int32, 2, 2, map[[2]int64]any{{1, 1}: int32(4)})

	plus := algebra.PlusOp(algebra.Int32)
	require.NoError(t, e.EwiseAdd(grb.Background(), C, nil, plus, plus, A, B))

	want := map[[2]int64]int32{{0, 0}: 1, {0, 1}: 2, {1, 0}: 3, {1, 1}: 5}
	for rc, wv := range want {
		v, ok, err := C.ExtractElement(rc[0], rc[1])
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, wv, v)
	}
}

// TestSelect_S6 is spec §8 scenario S6: TRIU selector.
func TestSelect_S6(t *testing.T) {
	t.Parallel()

	e := grb.NewEngine(0)
	defer e.Close()

	A := newFilled(t, algebra.Int32, 3, 3, map[[2]int64]any{
		{0, 0}: int32(1), {0, 1}: int32(2), {0, 2}: int32(3),
		{1, 0}: int32(4), {1, 1}: int32(5), {1, 2}: int32(6),
		{2, 0}: int32(7), {2, 1}: int32(8), {2, 2}: int32(9),
	})
	C, err := grb.NewMatrix(algebra.Int32, 3, 3)
	require.NoError(t, err)

	require.NoError(t, e.Select(grb.Background(), C, nil, nil, grb.Triu, nil, A))

	for r := int64(0); r < 3; r++ {
		for c := int64(0); c < 3; c++ {
			v, ok, err := C.ExtractElement(r, c)
			require.NoError(t, err)
			if r <= c {
				require.True(t, ok)
				require.Equal(t, int32(r*3+c+1), v)
			} else {
				require.False(t, ok)
			}
		}
	}
}

// TestTranspose_Involution is spec §8 Testable Property 6.
func TestTranspose_Involution(t *testing.T) {
	t.Parallel()

	e := grb.NewEngine(0)
	defer e.Close()

	A := newFilled(t, algebra.Int32, 2, 3, map[[2]int64]any{
		{0, 0}: int32(1), {0, 2}: int32(2), {1, 1}: int32(3),
	})

	T1, err := grb.NewMatrix(algebra.Int32, 3, 2)
	require.NoError(t, err)
	require.NoError(t, e.Transpose(grb.Background(), T1, nil, nil, A))

	T2, err := grb.NewMatrix(algebra.Int32, 2, 3)
	require.NoError(t, err)
	require.NoError(t, e.Transpose(grb.Background(), T2, nil, nil, T1))

	for r := int64(0); r < 2; r++ {
		for c := int64(0); c < 3; c++ {
			v1, ok1, err := A.ExtractElement(r, c)
			require.NoError(t, err)
			v2, ok2, err := T2.ExtractElement(r, c)
			require.NoError(t, err)
			require.Equal(t, ok1, ok2)
			require.Equal(t, v1, v2)
		}
	}
}

// TestApply_AdditiveInverse exercises apply with a simple unary op.
func TestApply_AdditiveInverse(t *testing.T) {
	t.Parallel()

	e := grb.NewEngine(0)
	defer e.Close()

	A := newFilled(t, algebra.Int32, 2, 2, map[[2]int64]any{{0, 0}: int32(5), {1, 1}: int32(-3)})
	C, err := grb.NewMatrix(algebra.Int32, 2, 2)
	require.NoError(t, err)

	require.NoError(t, e.Apply(grb.Background(), C, nil, nil, algebra.AdditiveInverseOp(algebra.Int32), A))

	v, ok, err := C.ExtractElement(0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(-5), v)
}

// TestMxV_MatchesMxmColumnVector checks MxV's convenience wrapper against
// an equivalent Nx1 Mxm call.
func TestMxV_MatchesMxmColumnVector(t *testing.T) {
	t.Parallel()

	e := grb.NewEngine(0)
	defer e.Close()

	A := newFilled(t, algebra.FP64, 2, 2, map[[2]int64]any{{0, 0}: 1.0, {0, 1}: 2.0, {1, 1}: 3.0})
	u, err := grb.NewVector(2, algebra.FP64)
	require.NoError(t, err)
	require.NoError(t, u.SetElement(0, 1.0))
	require.NoError(t, u.SetElement(1, 2.0))
	require.NoError(t, u.Wait())

	w, err := grb.NewVector(2, algebra.FP64)
	require.NoError(t, err)

	sr := algebra.PlusTimesSemiring(algebra.FP64)
	require.NoError(t, e.MxV(grb.Background(), w, nil, nil, sr, A, u))

	// w = A*u: w(0) = A(0,0)*u(0) + A(0,1)*u(1) = 1*1 + 2*2 = 5;
	// w(1) = A(1,1)*u(1) = 3*2 = 6 (A(1,0) is absent).
	v0, ok, err := w.ExtractElement(0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 5.0, v0)

	v1, ok, err := w.ExtractElement(1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 6.0, v1)
}

// TestContext_CanceledShortCircuits checks spec §5/§7's cancellation
// contract: a canceled Context returns ErrCanceled before any mutation.
func TestContext_CanceledShortCircuits(t *testing.T) {
	t.Parallel()

	e := grb.NewEngine(0)
	defer e.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	A, err := grb.NewMatrix(algebra.FP64, 2, 2)
	require.NoError(t, err)
	C, err := grb.NewMatrix(algebra.FP64, 2, 2)
	require.NoError(t, err)

	sr := algebra.PlusTimesSemiring(algebra.FP64)
	err = e.Mxm(grb.WithContext(ctx), C, nil, nil, sr, A, A)
	require.ErrorIs(t, err, grb.ErrCanceled)
}
