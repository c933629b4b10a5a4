package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape indicates a requested row/column count is not positive.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a row or column index is outside [0, dim).
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrTypeMismatch indicates an operation was given a value whose code
	// does not match the matrix's storage code and no cast was requested.
	ErrTypeMismatch = errors.New("sparse: type mismatch")

	// ErrNilMatrix indicates a nil *Matrix was used where one is required.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrUserTypeSize indicates a UserDefined matrix operation received a
	// value buffer whose length does not match the matrix's UserType.Size.
	ErrUserTypeSize = errors.New("sparse: user-defined value has wrong size")

	// ErrCorruptState indicates the compressed p/i/x arrays violate an
	// internal invariant (non-monotonic p, i out of range), or serialized
	// input with a bad magic number. Surfaced by Deserialize, which
	// validates every matrix it decodes.
	ErrCorruptState = errors.New("sparse: corrupt compressed state")
)

func sparseErrorf(tag string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", tag, err)
}
