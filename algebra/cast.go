package algebra

// CastFunc converts one value, read from src in fromCode's native encoding,
// into dst in toCode's native encoding. It is the typecasting primitive the
// generic kernel path uses wherever a Semiring's Mul.XCode or Mul.YCode
// differs from an operand matrix's storage code (spec §3's "explicit or
// implicit cast" rule).
type CastFunc func(dst, src []byte)

// Cast returns the conversion function from fromCode to toCode, or
// ErrUnsupportedCast if no built-in conversion exists. Identical codes
// always succeed via a byte copy. UserDefined never casts to or from
// anything else: user types carry no numeric interpretation.
func Cast(fromCode, toCode Code) (CastFunc, error) {
	if fromCode == toCode {
		return castIdentity(fromCode), nil
	}
	if fromCode == UserDefined || toCode == UserDefined {
		return nil, algebraErrorf("Cast", ErrUnsupportedCast)
	}

	fn := castTable[fromCode][toCode]
	if fn == nil {
		return nil, algebraErrorf("Cast", ErrUnsupportedCast)
	}

	return fn, nil
}

func castIdentity(code Code) CastFunc {
	n := code.Size()
	return func(dst, src []byte) {
		copy(dst[:n], src[:n])
	}
}

// castTable[from][to] holds every built-in-to-built-in conversion. It is
// built once in init from the decode/encode primitives in scalar.go so every
// cast shares their rounding and truncation behavior exactly.
var castTable [UserDefined][UserDefined]CastFunc

func init() {
	codes := []Code{Bool, Int8, UInt8, Int16, UInt16, Int32, UInt32, Int64, UInt64, FP32, FP64}
	for _, from := range codes {
		for _, to := range codes {
			if from == to {
				continue
			}
			castTable[from][to] = buildCast(from, to)
		}
	}
}

// buildCast decodes a src value as fromCode, coerces it through float64 or
// int64/uint64 as needed, and re-encodes as toCode. Bool casts to numeric
// codes as 0/1; numeric codes cast to Bool as value != 0.
func buildCast(from, to Code) CastFunc {
	return func(dst, src []byte) {
		v, err := DecodeScalar(from, src)
		if err != nil {
			panic(algebraErrorf("buildCast", err))
		}

		var out []byte
		if to == Bool {
			out, err = EncodeScalar(Bool, toBool(v))
		} else if from == Bool {
			b := v.(bool)
			if b {
				out, err = EncodeScalar(to, int64(1))
			} else {
				out, err = EncodeScalar(to, int64(0))
			}
		} else if to.IsFloat() {
			f, ferr := asFloat64(v)
			if ferr != nil {
				panic(algebraErrorf("buildCast", ferr))
			}
			out, err = EncodeScalar(to, f)
		} else {
			i, ierr := asInt64(v)
			if ierr != nil {
				panic(algebraErrorf("buildCast", ierr))
			}
			out, err = EncodeScalar(to, i)
		}
		if err != nil {
			panic(algebraErrorf("buildCast", err))
		}

		copy(dst[:to.Size()], out)
	}
}

func toBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	default:
		i, err := asInt64(x)
		if err == nil {
			return i != 0
		}
		f, err := asFloat64(x)
		if err == nil {
			return f != 0
		}
		return false
	}
}
