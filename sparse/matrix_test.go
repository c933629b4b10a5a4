package sparse_test

import (
	"testing"

	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/sparse"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsBadShape(t *testing.T) {
	t.Parallel()

	_, err := sparse.New(0, 5, algebra.FP64)
	require.ErrorIs(t, err, sparse.ErrBadShape)

	_, err = sparse.New(5, -1, algebra.FP64)
	require.ErrorIs(t, err, sparse.ErrBadShape)
}

func TestNew_UserDefinedRequiresUserType(t *testing.T) {
	t.Parallel()

	_, err := sparse.New(3, 3, algebra.UserDefined)
	require.ErrorIs(t, err, sparse.ErrTypeMismatch)

	m, err := sparse.New(3, 3, algebra.UserDefined, sparse.WithUserType(sparse.UserType{Name: "pair", Size: 16}))
	require.NoError(t, err)
	require.Equal(t, algebra.UserDefined, m.Type())
}

func TestNew_DefaultsToColumnOriented(t *testing.T) {
	t.Parallel()

	m, err := sparse.New(4, 4, algebra.Int32)
	require.NoError(t, err)
	require.Equal(t, sparse.ByCol, m.Orientation())
	require.False(t, m.IsHypersparse())
}

func TestNVals_EmptyMatrix(t *testing.T) {
	t.Parallel()

	m, err := sparse.New(4, 4, algebra.Int32)
	require.NoError(t, err)

	n, err := m.NVals()
	require.NoError(t, err)
	require.Equal(t, int64(0), n)
}
