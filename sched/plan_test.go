package sched_test

import (
	"testing"

	"github.com/srki/GraphBLAS/sched"
	"github.com/stretchr/testify/require"
)

func TestPlanWork_SingleThreadWhenSmall(t *testing.T) {
	t.Parallel()

	plan := sched.PlanWork(100, 8, 0)
	require.Equal(t, 1, plan.Nthreads)
	require.Equal(t, 1, plan.Ntasks)
}

func TestPlanWork_ScalesThreadsWithWork(t *testing.T) {
	t.Parallel()

	plan := sched.PlanWork(100000, 8, sched.DefaultChunk)
	require.Equal(t, 8, plan.Nthreads)
	require.Equal(t, 64*8, plan.Ntasks)
}

func TestPlanWork_NtasksNeverExceedsNz(t *testing.T) {
	t.Parallel()

	plan := sched.PlanWork(10, 16, 1)
	require.LessOrEqual(t, plan.Ntasks, 10)
}

func TestPlanWork_ZeroNz(t *testing.T) {
	t.Parallel()

	plan := sched.PlanWork(0, 8, 0)
	require.Equal(t, 1, plan.Nthreads)
	require.Equal(t, 1, plan.Ntasks)
}
