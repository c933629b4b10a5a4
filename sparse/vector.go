package sparse

import "github.com/srki/GraphBLAS/algebra"

// Vector is a sparse one-dimensional array, implemented as an Nx1 Matrix
// internally so it shares the same pending/zombie/wait machinery without a
// parallel implementation to keep in sync.
type Vector struct {
	m *Matrix
}

// NewVector allocates an empty Vector of the given size over valCode.
func NewVector(size int64, valCode algebra.Code, opts ...Option) (*Vector, error) {
	m, err := New(size, 1, valCode, opts...)
	if err != nil {
		return nil, sparseErrorf("NewVector", err)
	}
	return &Vector{m: m}, nil
}

// Size returns the vector's length.
func (v *Vector) Size() int64 { return v.m.Nrows() }

// Type returns the vector's value storage code.
func (v *Vector) Type() algebra.Code { return v.m.Type() }

// AsMatrix exposes the underlying Nx1 Matrix, for kernels (package kernel)
// that operate uniformly over matrices and treat a vector as a single
// column.
func (v *Vector) AsMatrix() *Matrix { return v.m }

// SetElement enqueues a write of val at idx.
func (v *Vector) SetElement(idx int64, val []byte) error {
	return v.m.SetElement(idx, 0, val)
}

// SetElementValue encodes val and enqueues a write at idx.
func (v *Vector) SetElementValue(idx int64, val any) error {
	return v.m.SetElementValue(idx, 0, val)
}

// ExtractElement returns the value at idx, or ok=false if absent.
func (v *Vector) ExtractElement(idx int64) (val []byte, ok bool, err error) {
	return v.m.ExtractElement(idx, 0)
}

// ExtractElementValue decodes the value at idx.
func (v *Vector) ExtractElementValue(idx int64) (val any, ok bool, err error) {
	return v.m.ExtractElementValue(idx, 0)
}

// DeleteElement zombifies the entry at idx, if present.
func (v *Vector) DeleteElement(idx int64) error {
	return v.m.DeleteElement(idx, 0)
}

// NVals reports the number of logically present entries.
func (v *Vector) NVals() (int64, error) { return v.m.NVals() }

// Wait materializes pending writes and drops zombie entries.
func (v *Vector) Wait() error { return v.m.Wait() }

// Clone returns a deep, independent copy.
func (v *Vector) Clone() (*Vector, error) {
	m, err := v.m.Clone()
	if err != nil {
		return nil, sparseErrorf("Vector.Clone", err)
	}
	return &Vector{m: m}, nil
}
