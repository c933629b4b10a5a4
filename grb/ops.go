// SPDX-License-Identifier: MIT

package grb

import (
	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/kernel"
	"github.com/srki/GraphBLAS/ops"
)

// Option configures one operation call per spec §6's Descriptor (an alias
// of ops.Option so callers never need to import package ops directly).
type Option = ops.Option

var (
	WithReplace         = ops.WithReplace
	WithMaskStructure   = ops.WithMaskStructure
	WithMaskComplement  = ops.WithMaskComplement
	WithTransposeInput0 = ops.WithTransposeInput0
	WithTransposeInput1 = ops.WithTransposeInput1
	WithAxBMethod       = ops.WithAxBMethod
	WithNThreads        = ops.WithNThreads
)

// AxBMethod selects which of spec §4.3's three mxm algorithms to use.
type AxBMethod = ops.AxBMethod

const (
	AxBAuto      = ops.AxBAuto
	AxBGustavson = ops.AxBGustavson
	AxBDot       = ops.AxBDot
	AxBHeap      = ops.AxBHeap
)

// SelectOp names one of spec §4.6's built-in selectors.
type SelectOp = kernel.SelectOp

const (
	Triu    = kernel.SelectTriu
	Tril    = kernel.SelectTril
	Diag    = kernel.SelectDiag
	Offdiag = kernel.SelectOffdiag
	Nonzero = kernel.SelectNonzero
	EqZero  = kernel.SelectEqZero
	ValueGT = kernel.SelectGT
	ValueGE = kernel.SelectGE
	ValueLT = kernel.SelectLT
	ValueLE = kernel.SelectLE
	ValueNE = kernel.SelectNE
)

// Mxm implements spec §6's mxm(C, M, accum, semiring, A, B, desc): C<M> =
// accum(C, A*B) over the given semiring (spec §4.3, §4.7). M may be nil for
// no mask.
func (e *Engine) Mxm(ctx Context, C, M *Matrix, accum *algebra.BinaryOp, sr algebra.Semiring, A, B *Matrix, opts ...Option) error {
	if err := ctx.checkCanceled(); err != nil {
		return err
	}
	pool := e.planPool(ctx)
	return translate(ops.Mxm(pool, e.saunas, matrixOf(C), matrixOf(M), accum, sr, matrixOf(A), matrixOf(B), opts...))
}

// MxV implements matrix-vector multiply w<m> = accum(w, A*u): the
// supplemented entry point of SPEC_FULL.md §4, sharing Mxm's dispatch,
// kernel, and mask machinery by treating u and w as Nx1 matrices.
func (e *Engine) MxV(ctx Context, w *Vector, m *Vector, accum *algebra.BinaryOp, sr algebra.Semiring, A *Matrix, u *Vector, opts ...Option) error {
	var mm *Matrix
	if m != nil {
		mm = m.AsMatrix()
	}
	return e.Mxm(ctx, w.AsMatrix(), mm, accum, sr, A, u.AsMatrix(), opts...)
}

// VxM implements vector-matrix multiply w<m> = accum(w, u*A): u^T*A over
// the m-length row vector u and A's m rows, producing the n-length vector
// w. Values equal A^T*u, so it reuses Mxm with A transposed instead of
// needing a genuine row-vector representation.
func (e *Engine) VxM(ctx Context, w *Vector, m *Vector, accum *algebra.BinaryOp, sr algebra.Semiring, u *Vector, A *Matrix, opts ...Option) error {
	var mm *Matrix
	if m != nil {
		mm = m.AsMatrix()
	}
	opts = append(append([]Option{}, opts...), WithTransposeInput0())
	return e.Mxm(ctx, w.AsMatrix(), mm, accum, sr, A, u.AsMatrix(), opts...)
}

// EwiseAdd implements spec §6's ewise_add(C, M, accum, op, A, B, desc):
// set-union element-wise combination (spec §4.4).
func (e *Engine) EwiseAdd(ctx Context, C, M *Matrix, accum *algebra.BinaryOp, op *algebra.BinaryOp, A, B *Matrix, opts ...Option) error {
	if err := ctx.checkCanceled(); err != nil {
		return err
	}
	pool := e.planPool(ctx)
	return translate(ops.EwiseAdd(pool, matrixOf(C), matrixOf(M), accum, op, matrixOf(A), matrixOf(B), opts...))
}

// EwiseMult implements spec §6's ewise_mult(C, M, accum, op, A, B, desc):
// set-intersection element-wise combination (spec §4.4).
func (e *Engine) EwiseMult(ctx Context, C, M *Matrix, accum *algebra.BinaryOp, op *algebra.BinaryOp, A, B *Matrix, opts ...Option) error {
	if err := ctx.checkCanceled(); err != nil {
		return err
	}
	pool := e.planPool(ctx)
	return translate(ops.EwiseMult(pool, matrixOf(C), matrixOf(M), accum, op, matrixOf(A), matrixOf(B), opts...))
}

// ReduceScalar implements spec §6's reduce_scalar(c_out, c_type, accum,
// monoid, A): s = monoid-fold over A's values (spec §4.5), c ← accum(c, s)
// if accum is given. cIn is ignored (and may be nil) when accum is nil.
func (e *Engine) ReduceScalar(ctx Context, cIn any, cType algebra.Code, accum *algebra.BinaryOp, monoid algebra.Monoid, A *Matrix) (any, error) {
	if err := ctx.checkCanceled(); err != nil {
		return nil, err
	}
	pool := e.planPool(ctx)

	var cBytes []byte
	if cIn != nil {
		b, err := algebra.EncodeScalar(cType, cIn)
		if err != nil {
			return nil, translate(err)
		}
		cBytes = b
	} else {
		cBytes = make([]byte, cType.Size())
	}

	out, err := ops.ReduceScalar(pool, cBytes, cType, accum, monoid, matrixOf(A))
	if err != nil {
		return nil, translate(err)
	}
	v, err := algebra.DecodeScalar(cType, out)
	return v, translate(err)
}

// Apply implements spec §6's apply(C, M, accum, unary, A, desc): C<M> =
// accum(C, unary(A)) (spec §4.6).
func (e *Engine) Apply(ctx Context, C, M *Matrix, accum *algebra.BinaryOp, op *algebra.UnaryOp, A *Matrix, opts ...Option) error {
	if err := ctx.checkCanceled(); err != nil {
		return err
	}
	pool := e.planPool(ctx)
	return translate(ops.Apply(pool, matrixOf(C), matrixOf(M), accum, op, matrixOf(A), opts...))
}

// Select implements spec §6's select(C, M, accum, selector, A, thunk,
// desc): C<M> = accum(C, {entries of A admitted by selector}) (spec §4.6).
// thunk is encoded in A's own Code by the caller (algebra.EncodeScalar);
// pass nil for selectors that ignore it (Triu, Tril, Diag, Offdiag,
// Nonzero, EqZero).
func (e *Engine) Select(ctx Context, C, M *Matrix, accum *algebra.BinaryOp, selector SelectOp, thunk []byte, A *Matrix, opts ...Option) error {
	if err := ctx.checkCanceled(); err != nil {
		return err
	}
	pool := e.planPool(ctx)
	return translate(ops.Select(pool, matrixOf(C), matrixOf(M), accum, selector, thunk, matrixOf(A), opts...))
}

// Transpose implements spec §6's transpose(C, M, accum, A, desc): C<M> =
// accum(C, A') (spec §4.6).
func (e *Engine) Transpose(ctx Context, C, M *Matrix, accum *algebra.BinaryOp, A *Matrix, opts ...Option) error {
	if err := ctx.checkCanceled(); err != nil {
		return err
	}
	pool := e.planPool(ctx)
	return translate(ops.Transpose(pool, matrixOf(C), matrixOf(M), accum, matrixOf(A), opts...))
}

// Assign implements spec §3's "assign family" (supplemented per
// SPEC_FULL.md §4): C(rowIndices, colIndices) = accum(C, A), under the same
// mask/replace descriptor machinery as Mxm.
func (e *Engine) Assign(ctx Context, C, M *Matrix, accum *algebra.BinaryOp, A *Matrix, rowIndices, colIndices []int64, opts ...Option) error {
	if err := ctx.checkCanceled(); err != nil {
		return err
	}
	pool := e.planPool(ctx)
	return translate(ops.Assign(pool, matrixOf(C), matrixOf(M), accum, matrixOf(A), rowIndices, colIndices, opts...))
}

// AssignConstant implements the scalar-broadcast variant of Assign: every
// position in C(rowIndices, colIndices) is set to val (encoded in C's own
// Code).
func (e *Engine) AssignConstant(ctx Context, C, M *Matrix, accum *algebra.BinaryOp, val []byte, rowIndices, colIndices []int64, opts ...Option) error {
	if err := ctx.checkCanceled(); err != nil {
		return err
	}
	pool := e.planPool(ctx)
	return translate(ops.AssignConstant(pool, matrixOf(C), matrixOf(M), accum, val, rowIndices, colIndices, opts...))
}
