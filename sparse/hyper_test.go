package sparse_test

import (
	"testing"

	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/sparse"
	"github.com/stretchr/testify/require"
)

func TestWait_SwitchesToHypersparseWhenSparse(t *testing.T) {
	t.Parallel()

	m, err := sparse.New(10000, 10000, algebra.Int32, sparse.WithHyperRatio(0.01))
	require.NoError(t, err)

	require.NoError(t, m.SetElementValue(5, 5, int32(1)))
	require.NoError(t, m.Wait())

	require.True(t, m.IsHypersparse())

	v, ok, err := m.ExtractElementValue(5, 5)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(1), v)
}

func TestWait_StaysNonHyperWhenDense(t *testing.T) {
	t.Parallel()

	m, err := sparse.New(4, 4, algebra.Int32, sparse.WithHyperRatio(0.01))
	require.NoError(t, err)

	for col := int64(0); col < 4; col++ {
		require.NoError(t, m.SetElementValue(0, col, int32(col)))
	}
	require.NoError(t, m.Wait())

	require.False(t, m.IsHypersparse())
}

func TestWithHypersparse_StartsHyperEvenEmpty(t *testing.T) {
	t.Parallel()

	m, err := sparse.New(100, 100, algebra.Int32, sparse.WithHypersparse())
	require.NoError(t, err)
	require.True(t, m.IsHypersparse())
}
