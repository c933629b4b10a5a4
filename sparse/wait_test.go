package sparse_test

import (
	"testing"

	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/sparse"
	"github.com/stretchr/testify/require"
)

func TestWait_SortsEntriesWithinEachVector(t *testing.T) {
	t.Parallel()

	m, err := sparse.New(10, 10, algebra.Int32)
	require.NoError(t, err)

	require.NoError(t, m.SetElementValue(7, 2, int32(1)))
	require.NoError(t, m.SetElementValue(1, 2, int32(2)))
	require.NoError(t, m.SetElementValue(4, 2, int32(3)))
	require.NoError(t, m.Wait())

	n, err := m.NVals()
	require.NoError(t, err)
	require.Equal(t, int64(3), n)

	for _, row := range []int64{1, 4, 7} {
		_, ok, err := m.ExtractElement(row, 2)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestWait_NoPendingIsNoOp(t *testing.T) {
	t.Parallel()

	m, err := sparse.New(4, 4, algebra.Bool)
	require.NoError(t, err)

	require.NoError(t, m.Wait())
	require.NoError(t, m.Wait())
}

func TestWait_ReconcilesAcrossMultipleVectors(t *testing.T) {
	t.Parallel()

	m, err := sparse.New(8, 8, algebra.FP64)
	require.NoError(t, err)

	for col := int64(0); col < 8; col++ {
		for row := int64(0); row < 8; row++ {
			if (row+col)%3 == 0 {
				require.NoError(t, m.SetElementValue(row, col, float64(row*8+col)))
			}
		}
	}
	require.NoError(t, m.Wait())

	for col := int64(0); col < 8; col++ {
		for row := int64(0); row < 8; row++ {
			v, ok, err := m.ExtractElementValue(row, col)
			require.NoError(t, err)
			if (row+col)%3 == 0 {
				require.True(t, ok)
				require.Equal(t, float64(row*8+col), v)
			} else {
				require.False(t, ok)
			}
		}
	}
}
