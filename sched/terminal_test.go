package sched_test

import (
	"sync"
	"testing"

	"github.com/srki/GraphBLAS/sched"
	"github.com/stretchr/testify/require"
)

func TestTerminal_StartsUntripped(t *testing.T) {
	t.Parallel()

	var term sched.Terminal
	require.False(t, term.Tripped())
}

func TestTerminal_TripIsVisibleAcrossGoroutines(t *testing.T) {
	t.Parallel()

	var term sched.Terminal
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		term.Trip()
	}()
	wg.Wait()

	require.True(t, term.Tripped())
}

func TestTerminal_TripIsIdempotent(t *testing.T) {
	t.Parallel()

	var term sched.Terminal
	term.Trip()
	term.Trip()
	require.True(t, term.Tripped())
}
