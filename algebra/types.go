package algebra

import "fmt"

// Code identifies the storage type of a matrix's values. The numeric values
// are stable wire/build constants per spec §6 and must not be renumbered.
type Code uint8

// Built-in type codes, stable across the life of the engine.
const (
	Bool Code = iota
	Int8
	UInt8
	Int16
	UInt16
	Int32
	UInt32
	Int64
	UInt64
	FP32
	FP64
	UserDefined
)

var codeNames = [...]string{
	Bool:        "Bool",
	Int8:        "Int8",
	UInt8:       "UInt8",
	Int16:       "Int16",
	UInt16:      "UInt16",
	Int32:       "Int32",
	UInt32:      "UInt32",
	Int64:       "Int64",
	UInt64:      "UInt64",
	FP32:        "FP32",
	FP64:        "FP64",
	UserDefined: "UserDefined",
}

// String implements fmt.Stringer for debugging and error messages.
func (c Code) String() string {
	if int(c) < len(codeNames) && codeNames[c] != "" {
		return codeNames[c]
	}

	return fmt.Sprintf("Code(%d)", uint8(c))
}

// builtinSizes holds the byte width of each built-in code. UserDefined has
// no fixed size here; a user-defined type carries its own size alongside the
// Code value wherever one is needed (see UserType).
var builtinSizes = [...]int{
	Bool:   1,
	Int8:   1,
	UInt8:  1,
	Int16:  2,
	UInt16: 2,
	Int32:  4,
	UInt32: 4,
	Int64:  8,
	UInt64: 8,
	FP32:   4,
	FP64:   8,
}

// Size returns the byte width of one value of this built-in Code.
// UserDefined has no intrinsic size; callers must track it via UserType.
// Complexity: O(1).
func (c Code) Size() int {
	if int(c) < len(builtinSizes) {
		return builtinSizes[c]
	}

	return 0
}

// IsBuiltin reports whether c names one of the eleven built-in numeric or
// boolean types (everything except UserDefined).
func (c Code) IsBuiltin() bool {
	return c < UserDefined
}

// IsFloat reports whether c is FP32 or FP64.
func (c Code) IsFloat() bool {
	return c == FP32 || c == FP64
}

// IsSigned reports whether c is a built-in signed integer type.
func (c Code) IsSigned() bool {
	switch c {
	case Int8, Int16, Int32, Int64:
		return true
	default:
		return false
	}
}

// UserType carries the opaque byte size and copy semantics of a user-defined
// value type, since UserDefined alone does not determine Size().
//
// Contract: Size must be > 0. Values of a UserType are moved by plain byte
// copy (memcpy-shaped); no constructor/destructor hooks are invoked, mirroring
// the engine's byte-oriented generic path (see doc.go).
type UserType struct {
	// Name is a human-readable tag used in error messages, not an identity.
	Name string

	// Size is the fixed byte width of one value of this type.
	Size int
}

// Code returns algebra.UserDefined; UserType values are always tagged with
// the single UserDefined Code, distinguished from each other only by the
// UserType descriptor carried alongside a Matrix (see sparse.Matrix.UserType).
func (UserType) Code() Code { return UserDefined }
