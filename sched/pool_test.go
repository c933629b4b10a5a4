package sched_test

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/srki/GraphBLAS/sched"
	"github.com/stretchr/testify/require"
)

func TestNew_ExplicitAndDefaultWorkerCount(t *testing.T) {
	t.Parallel()

	p := sched.New(4)
	defer p.Close()
	require.Equal(t, 4, p.NumWorkers())

	p2 := sched.New(0)
	defer p2.Close()
	require.Equal(t, runtime.GOMAXPROCS(0), p2.NumWorkers())
}

func TestParallelFor_CoversEveryIndex(t *testing.T) {
	t.Parallel()

	p := sched.New(4)
	defer p.Close()

	n := 100
	results := make([]int, n)
	p.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		require.Equal(t, i*2, results[i])
	}
}

func TestParallelForAtomic_CoversEveryIndex(t *testing.T) {
	t.Parallel()

	p := sched.New(4)
	defer p.Close()

	n := 100
	results := make([]int, n)
	p.ParallelForAtomic(n, func(i int) {
		results[i] = i * 2
	})

	for i := 0; i < n; i++ {
		require.Equal(t, i*2, results[i])
	}
}

func TestParallelForAtomicBatched_CoversEveryIndex(t *testing.T) {
	t.Parallel()

	p := sched.New(4)
	defer p.Close()

	n := 100
	results := make([]int, n)
	p.ParallelForAtomicBatched(n, 10, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		require.Equal(t, i*2, results[i])
	}
}

func TestParallelFor_NSmallerThanWorkers(t *testing.T) {
	t.Parallel()

	p := sched.New(8)
	defer p.Close()

	var count atomic.Int32
	p.ParallelFor(3, func(start, end int) {
		count.Add(int32(end - start))
	})
	require.Equal(t, int32(3), count.Load())
}

func TestParallelFor_ZeroNNoOp(t *testing.T) {
	t.Parallel()

	p := sched.New(4)
	defer p.Close()

	called := false
	p.ParallelFor(0, func(start, end int) { called = true })
	require.False(t, called)
}

func TestClose_IsIdempotentAndFallsBackToSequential(t *testing.T) {
	t.Parallel()

	p := sched.New(4)
	p.Close()
	p.Close() // must not panic

	n := 100
	results := make([]int, n)
	p.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})
	for i := 0; i < n; i++ {
		require.Equal(t, i*2, results[i])
	}
}
