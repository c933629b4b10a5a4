package algebra

import (
	"errors"
	"fmt"
)

// Sentinel errors for the algebra package. Algorithms must return these via
// errors.Is rather than constructing ad hoc strings; see matrixErrorf-style
// wrapping in algebraErrorf below.
var (
	// ErrDomainMismatch indicates operand/result type codes are incompatible
	// for the requested operator without an explicit cast.
	ErrDomainMismatch = errors.New("algebra: domain mismatch")

	// ErrUnknownCode indicates a Code value outside the built-in range that
	// was not registered as a user-defined type.
	ErrUnknownCode = errors.New("algebra: unknown type code")

	// ErrUnsupportedCast indicates no conversion exists between two codes.
	ErrUnsupportedCast = errors.New("algebra: unsupported cast")

	// ErrNilOperator indicates a nil UnaryOp, BinaryOp, Monoid, or Semiring
	// was passed where a non-nil operator is required.
	ErrNilOperator = errors.New("algebra: nil operator")

	// ErrBadSemiring indicates a Semiring whose Mul.ZCode does not match
	// Add.Op's operand types, violating the semiring contract of §3.
	ErrBadSemiring = errors.New("algebra: multiply/add type mismatch")
)

// algebraErrorf wraps err with a call-site tag, consistent with the
// matrixErrorf convention used throughout this codebase.
func algebraErrorf(tag string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", tag, err)
}
