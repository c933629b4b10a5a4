// SPDX-License-Identifier: MIT

package grb

import (
	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/sparse"
)

// Matrix is the public handle for a sparse.Matrix: everything package
// sparse exports that a caller of this facade needs, re-surfaced with
// Info-tagged errors instead of package sparse's own sentinels (per spec
// §6/§7 and grb/errors.go's translate).
type Matrix struct {
	m *sparse.Matrix
}

// MatrixOption configures a Matrix at construction time; an alias of
// sparse.Option so callers never need to import package sparse directly.
type MatrixOption = sparse.Option

var (
	WithOrientation  = sparse.WithOrientation
	WithHyperRatio   = sparse.WithHyperRatio
	WithHypersparse  = sparse.WithHypersparse
	WithUserType     = sparse.WithUserType
	WithPendingLimit = sparse.WithPendingLimit
)

// Orientation aliases sparse.Orientation (CSC/CSR storage selection).
type Orientation = sparse.Orientation

const (
	ByCol = sparse.ByCol
	ByRow = sparse.ByRow
)

// NewMatrix implements spec §6's matrix_new(type, nrows, ncols): an empty
// matrix of the given value Code and shape, by-column oriented unless
// WithOrientation(ByRow) is given.
func NewMatrix(valCode algebra.Code, nrows, ncols int64, opts ...MatrixOption) (*Matrix, error) {
	m, err := sparse.New(nrows, ncols, valCode, opts...)
	if err != nil {
		return nil, translate(err)
	}
	return &Matrix{m: m}, nil
}

// Raw exposes the underlying *sparse.Matrix for callers (package ops
// internals, tests) that need to operate below the facade.
func (a *Matrix) Raw() *sparse.Matrix { return a.m }

func matrixOf(a *Matrix) *sparse.Matrix {
	if a == nil {
		return nil
	}
	return a.m
}

// Nrows, Ncols, Type, and Orient mirror sparse.Matrix's read-only accessors.
func (a *Matrix) Nrows() int64            { return a.m.Nrows() }
func (a *Matrix) Ncols() int64            { return a.m.Ncols() }
func (a *Matrix) Type() algebra.Code      { return a.m.Type() }
func (a *Matrix) Orient() Orientation     { return a.m.Orientation() }
func (a *Matrix) IsHypersparse() bool     { return a.m.IsHypersparse() }

// NVals reports the number of logically present entries, forcing a Wait
// first if pending tuples or zombies would otherwise make the count stale.
func (a *Matrix) NVals() (int64, error) {
	n, err := a.m.NVals()
	return n, translate(err)
}

// SetElement implements spec §6's set_element(M, i, j, v): enqueues v as a
// pending write, not yet visible to ExtractElement until Wait runs.
func (a *Matrix) SetElement(row, col int64, v any) error {
	return translate(a.m.SetElementValue(row, col, v))
}

// ExtractElement implements spec §6's extract_element(M, i, j) -> v?,
// forcing a Wait first (per the spec note "may trigger wait").
func (a *Matrix) ExtractElement(row, col int64) (v any, ok bool, err error) {
	v, ok, err = a.m.ExtractElementValue(row, col)
	return v, ok, translate(err)
}

// DeleteElement zombifies the entry at (row, col), if present.
func (a *Matrix) DeleteElement(row, col int64) error {
	return translate(a.m.DeleteElement(row, col))
}

// Wait implements spec §6's wait(M): idempotently drains pending tuples and
// compacts out zombies (spec §4.1).
func (a *Matrix) Wait() error { return translate(a.m.Wait()) }

// Clone returns a deep, independent copy.
func (a *Matrix) Clone() (*Matrix, error) {
	c, err := a.m.Clone()
	if err != nil {
		return nil, translate(err)
	}
	return &Matrix{m: c}, nil
}

// Serialize and Deserialize implement spec §6's matrix serialization
// format (header + p, h?, i, x in little-endian).
func (a *Matrix) Serialize() ([]byte, error) {
	b, err := a.m.Serialize()
	return b, translate(err)
}

// DeserializeMatrix reconstructs a Matrix from Serialize's output. userType
// must be supplied (and must match the header's recorded size) iff the
// serialized matrix's type code is algebra.UserDefined.
func DeserializeMatrix(data []byte, userType algebra.UserType) (*Matrix, error) {
	m, err := sparse.Deserialize(data, userType)
	if err != nil {
		return nil, translate(err)
	}
	return &Matrix{m: m}, nil
}
