// SPDX-License-Identifier: MIT

package grb

import (
	"errors"
	"fmt"

	"github.com/srki/GraphBLAS/sparse"
)

// Info is the small status enumeration of spec §6. Each non-Success value
// has a matching Err sentinel below; translate maps package sparse's
// sentinels onto them, and returns any error it does not recognise
// unchanged.
type Info int

const (
	Success Info = iota
	OutOfMemory
	DomainMismatch
	DimensionMismatch
	InvalidObject
	NullPointer
	InvalidValue
	UninitializedObject
)

var infoNames = [...]string{
	Success:              "Success",
	OutOfMemory:          "OutOfMemory",
	DomainMismatch:       "DomainMismatch",
	DimensionMismatch:    "DimensionMismatch",
	InvalidObject:        "InvalidObject",
	NullPointer:          "NullPointer",
	InvalidValue:         "InvalidValue",
	UninitializedObject:  "UninitializedObject",
}

func (i Info) String() string {
	if int(i) < len(infoNames) && infoNames[i] != "" {
		return infoNames[i]
	}
	return fmt.Sprintf("Info(%d)", int(i))
}

// Sentinel errors, one per non-Success Info value. NoValue (spec §6: "an
// internal kernel-not-applicable code, never surfaced externally") has
// deliberately no sentinel here: package dispatch's ErrNoValue is consumed
// internally by the switch factory and never escapes to this facade.
var (
	ErrOutOfMemory          = errors.New("grb: out of memory")
	ErrDomainMismatch       = errors.New("grb: domain mismatch")
	ErrDimensionMismatch    = errors.New("grb: dimension mismatch")
	ErrInvalidObject        = errors.New("grb: invalid object")
	ErrNullPointer          = errors.New("grb: null pointer")
	ErrInvalidValue         = errors.New("grb: invalid value")
	ErrUninitializedObject  = errors.New("grb: uninitialized object")

	// ErrCanceled wraps a canceled or deadline-exceeded Context (spec §5:
	// "cancellation surfaces as its own status and guarantees no partial
	// mutation of user-visible outputs").
	ErrCanceled = errors.New("grb: operation canceled")
)

// grbErrorf wraps err with a call-site tag, matching the algebra/sparse
// packages' own error-wrapping convention.
func grbErrorf(tag string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", tag, err)
}

// translate maps a lower-layer sentinel (package sparse or algebra) onto
// the facade's own Info-tagged sentinel, so callers of this package only
// ever need to errors.Is against the grb package's own error variables.
func translate(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, sparse.ErrBadShape), errors.Is(err, sparse.ErrOutOfRange):
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	case errors.Is(err, sparse.ErrDimensionMismatch):
		return fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
	case errors.Is(err, sparse.ErrTypeMismatch), errors.Is(err, sparse.ErrUserTypeSize):
		return fmt.Errorf("%w: %v", ErrDomainMismatch, err)
	case errors.Is(err, sparse.ErrNilMatrix):
		return fmt.Errorf("%w: %v", ErrNullPointer, err)
	case errors.Is(err, sparse.ErrCorruptState):
		return fmt.Errorf("%w: %v", ErrInvalidObject, err)
	default:
		return err
	}
}
