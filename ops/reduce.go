package ops

import (
	"unsafe"

	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/kernel"
	"github.com/srki/GraphBLAS/sched"
	"github.com/srki/GraphBLAS/sparse"
)

// ReduceScalar computes c_out = accum(c, fold over A with monoid) per spec
// §4.5, returning the fresh scalar bytes (cType-typed). If accum is nil,
// the fold result is returned directly (already cast to cType if needed).
func ReduceScalar(pool *sched.Pool, cIn []byte, cType algebra.Code, accum *algebra.BinaryOp, monoid algebra.Monoid, A *sparse.Matrix) ([]byte, error) {
	if err := A.EnsureReady(); err != nil {
		return nil, err
	}

	var cast algebra.CastFunc
	if A.Code() != monoid.Op.XCode {
		c, err := algebra.Cast(A.Code(), monoid.Op.XCode)
		if err != nil {
			return nil, err
		}
		cast = c
	}

	A.RLock()
	s, err := kernel.Reduce(pool, monoid, A, cast, nil)
	A.RUnlock()
	if err != nil {
		return nil, err
	}

	if monoid.Op.ZCode != cType {
		toC, err := algebra.Cast(monoid.Op.ZCode, cType)
		if err != nil {
			return nil, err
		}
		casted := make([]byte, cType.Size())
		toC(casted, s)
		s = casted
	}

	if accum == nil {
		return s, nil
	}

	out := make([]byte, cType.Size())
	accum.Apply(unsafe.Pointer(&out[0]), unsafe.Pointer(&cIn[0]), unsafe.Pointer(&s[0]))
	return out, nil
}
