package algebra_test

import (
	"testing"

	"github.com/srki/GraphBLAS/algebra"
	"github.com/stretchr/testify/require"
)

func TestPlusMonoid_NoTerminal(t *testing.T) {
	t.Parallel()

	m := algebra.PlusMonoid(algebra.FP64)
	require.False(t, m.HasTerminal)

	id, err := algebra.DecodeScalar(algebra.FP64, m.Identity)
	require.NoError(t, err)
	require.Equal(t, float64(0), id)
}

func TestTimesMonoid_TerminalAtZero(t *testing.T) {
	t.Parallel()

	m := algebra.TimesMonoid(algebra.Int32)
	require.True(t, m.HasTerminal)

	term, err := algebra.DecodeScalar(algebra.Int32, m.Terminal)
	require.NoError(t, err)
	require.Equal(t, int32(0), term)

	id, err := algebra.DecodeScalar(algebra.Int32, m.Identity)
	require.NoError(t, err)
	require.Equal(t, int32(1), id)
}

func TestMinMaxMonoid_TerminalsAreExtremes(t *testing.T) {
	t.Parallel()

	minM := algebra.MinMonoid(algebra.Int8)
	term, err := algebra.DecodeScalar(algebra.Int8, minM.Terminal)
	require.NoError(t, err)
	require.Equal(t, int8(-128), term)

	maxM := algebra.MaxMonoid(algebra.Int8)
	term, err = algebra.DecodeScalar(algebra.Int8, maxM.Terminal)
	require.NoError(t, err)
	require.Equal(t, int8(127), term)
}

func TestLorLandMonoid(t *testing.T) {
	t.Parallel()

	lor := algebra.LorMonoid()
	id, err := algebra.DecodeScalar(algebra.Bool, lor.Identity)
	require.NoError(t, err)
	require.Equal(t, false, id)

	term, err := algebra.DecodeScalar(algebra.Bool, lor.Terminal)
	require.NoError(t, err)
	require.Equal(t, true, term)

	land := algebra.LandMonoid()
	id, err = algebra.DecodeScalar(algebra.Bool, land.Identity)
	require.NoError(t, err)
	require.Equal(t, true, id)
}
