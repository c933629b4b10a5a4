// SPDX-License-Identifier: MIT

package grb

import (
	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/sparse"
)

// Vector is the public handle for a sparse.Vector (spec §4's "SUPPLEMENTED
// FEATURES": not in spec.md's §6 table, added per forGraphBLASGo's real
// MxV/VxM surface — see SPEC_FULL.md §4). Internally it is an Nx1 Matrix,
// sharing the same pending/zombie/wait machinery.
type Vector struct {
	v *sparse.Vector
}

// NewVector allocates an empty Vector of the given size over valCode.
func NewVector(size int64, valCode algebra.Code, opts ...MatrixOption) (*Vector, error) {
	v, err := sparse.NewVector(size, valCode, opts...)
	if err != nil {
		return nil, translate(err)
	}
	return &Vector{v: v}, nil
}

// AsMatrix exposes the Vector as the Nx1 Matrix mxm/ewise/etc. operate on.
func (v *Vector) AsMatrix() *Matrix { return &Matrix{m: v.v.AsMatrix()} }

func (v *Vector) Size() int64       { return v.v.Size() }
func (v *Vector) Type() algebra.Code { return v.v.Type() }

// SetElement enqueues a write of val at idx.
func (v *Vector) SetElement(idx int64, val any) error {
	return translate(v.v.SetElementValue(idx, val))
}

// ExtractElement reads the value at idx, forcing a Wait first.
func (v *Vector) ExtractElement(idx int64) (val any, ok bool, err error) {
	val, ok, err = v.v.ExtractElementValue(idx)
	return val, ok, translate(err)
}

// DeleteElement zombifies the entry at idx, if present.
func (v *Vector) DeleteElement(idx int64) error {
	return translate(v.v.DeleteElement(idx))
}

// NVals reports the number of logically present entries.
func (v *Vector) NVals() (int64, error) {
	n, err := v.v.NVals()
	return n, translate(err)
}

// Wait materializes pending writes and drops zombie entries.
func (v *Vector) Wait() error { return translate(v.v.Wait()) }

// Clone returns a deep, independent copy.
func (v *Vector) Clone() (*Vector, error) {
	c, err := v.v.Clone()
	if err != nil {
		return nil, translate(err)
	}
	return &Vector{v: c}, nil
}
