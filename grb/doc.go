// SPDX-License-Identifier: MIT
//
// Package grb is a sparse-matrix GraphBLAS engine: linear-algebra
// operations over arbitrary semirings and monoids, with optional masks,
// accumulation, and in-place output replacement.
//
// Under the hood, the engine is organized into layered subpackages:
//
//	algebra/   — operators, monoids, semirings, and built-in registries
//	sparse/    — the CSC/CSR matrix data model, pending tuples, zombies, wait
//	dispatch/  — the switch-factory between specialized and generic workers
//	sched/     — the worker pool and parallel-for primitives kernels run on
//	kernel/    — Layer L0 primitive kernels (mxm, ewise, reduce, apply, select, transpose)
//	ops/       — Layer L1 orchestrators and Layer L2 masked accumulation
//
// This package is the root facade: Matrix/Vector construction, element
// access, and the named operations of the external interface (Mxm,
// EwiseAdd, EwiseMult, ReduceScalar, Apply, Select, Transpose, plus the
// supplemented MxV/VxM and Assign family) all take a Context carrying
// cancellation and a thread budget, and return an error wrapping one of
// the Info codes.
package grb
