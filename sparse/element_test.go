package sparse_test

import (
	"testing"

	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/sparse"
	"github.com/stretchr/testify/require"
)

func TestSetExtractElement_RoundTrip(t *testing.T) {
	t.Parallel()

	m, err := sparse.New(5, 5, algebra.FP64)
	require.NoError(t, err)

	require.NoError(t, m.SetElementValue(2, 3, 3.25))

	v, ok, err := m.ExtractElementValue(2, 3)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3.25, v)

	_, ok, err = m.ExtractElementValue(0, 0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestExtractElement_OutOfRange(t *testing.T) {
	t.Parallel()

	m, err := sparse.New(3, 3, algebra.Int32)
	require.NoError(t, err)

	_, _, err = m.ExtractElement(5, 0)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	err = m.SetElementValue(-1, 0, int32(1))
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}

func TestSetElement_OverwritesOnSameCoordinate(t *testing.T) {
	t.Parallel()

	m, err := sparse.New(5, 5, algebra.Int32)
	require.NoError(t, err)

	require.NoError(t, m.SetElementValue(1, 1, int32(10)))
	require.NoError(t, m.SetElementValue(1, 1, int32(20)))

	v, ok, err := m.ExtractElementValue(1, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(20), v)
}

func TestSetElement_CombinesViaDupOp(t *testing.T) {
	t.Parallel()

	m, err := sparse.New(5, 5, algebra.Int32)
	require.NoError(t, err)
	m.SetDupOp(algebra.PlusOp(algebra.Int32))

	require.NoError(t, m.SetElementValue(1, 1, int32(10)))
	require.NoError(t, m.SetElementValue(1, 1, int32(5)))

	v, ok, err := m.ExtractElementValue(1, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(15), v)
}

func TestDeleteElement_RemovesEntry(t *testing.T) {
	t.Parallel()

	m, err := sparse.New(5, 5, algebra.Int32)
	require.NoError(t, err)

	require.NoError(t, m.SetElementValue(2, 2, int32(7)))
	require.NoError(t, m.Wait())

	require.NoError(t, m.DeleteElement(2, 2))

	_, ok, err := m.ExtractElement(2, 2)
	require.NoError(t, err)
	require.False(t, ok)

	n, err := m.NVals()
	require.NoError(t, err)
	require.Equal(t, int64(0), n)
}

func TestSetElement_UserTypeSizeValidated(t *testing.T) {
	t.Parallel()

	m, err := sparse.New(3, 3, algebra.UserDefined, sparse.WithUserType(sparse.UserType{Name: "pair", Size: 4}))
	require.NoError(t, err)

	err = m.SetElement(0, 0, []byte{1, 2, 3})
	require.ErrorIs(t, err, sparse.ErrUserTypeSize)

	require.NoError(t, m.SetElement(0, 0, []byte{1, 2, 3, 4}))
	got, ok, err := m.ExtractElement(0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 3, 4}, got)
}
