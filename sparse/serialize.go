package sparse

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/srki/GraphBLAS/algebra"
)

// wireMagic tags the serialized format so Deserialize can reject foreign
// input before trusting any length field it carries.
const wireMagic uint32 = 0x47425A31 // "GBZ1"

// Serialize materializes m (if needed) and encodes it as a self-contained
// byte stream: header (magic, shape, orientation, type code, hypersparse
// flag), then p, h (if hypersparse), i, and x, each length-prefixed.
// UserDefined matrices additionally encode the UserType's declared size so
// Deserialize can validate x's length without the caller supplying it.
func (m *Matrix) Serialize() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.pending) > 0 || m.nzombies > 0 {
		if err := m.waitLocked(); err != nil {
			return nil, sparseErrorf("Serialize", err)
		}
	}

	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, wireMagic)
	_ = binary.Write(&buf, binary.LittleEndian, m.nrows)
	_ = binary.Write(&buf, binary.LittleEndian, m.ncols)
	_ = binary.Write(&buf, binary.LittleEndian, int32(m.orient))
	_ = binary.Write(&buf, binary.LittleEndian, uint8(m.valCode))
	_ = binary.Write(&buf, binary.LittleEndian, boolByte(m.hyper))

	userSize := int64(0)
	if m.valCode == algebra.UserDefined {
		userSize = int64(m.userType.Size)
	}
	_ = binary.Write(&buf, binary.LittleEndian, userSize)

	writeInt64Slice(&buf, m.p)
	if m.hyper {
		writeInt64Slice(&buf, m.h)
	}
	writeInt64Slice(&buf, m.i)
	writeBytesSlice(&buf, m.x)

	return buf.Bytes(), nil
}

// Deserialize reconstructs a Matrix from bytes produced by Serialize. If the
// original matrix used a UserDefined code, userType must name a UserType
// whose Size matches the encoded value; pass a zero UserType for built-in
// codes.
func Deserialize(data []byte, userType UserType) (*Matrix, error) {
	r := bytes.NewReader(data)

	var magic uint32
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return nil, sparseErrorf("Deserialize", err)
	}
	if magic != wireMagic {
		return nil, sparseErrorf("Deserialize", fmt.Errorf("%w: bad magic", ErrCorruptState))
	}

	m := &Matrix{pendingLimit: DefaultPendingLimit, hyperRatio: DefaultHyperRatio}

	var orient int32
	var code uint8
	var hyperFlag byte
	var userSize int64

	if err := binary.Read(r, binary.LittleEndian, &m.nrows); err != nil {
		return nil, sparseErrorf("Deserialize", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &m.ncols); err != nil {
		return nil, sparseErrorf("Deserialize", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &orient); err != nil {
		return nil, sparseErrorf("Deserialize", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &code); err != nil {
		return nil, sparseErrorf("Deserialize", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &hyperFlag); err != nil {
		return nil, sparseErrorf("Deserialize", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &userSize); err != nil {
		return nil, sparseErrorf("Deserialize", err)
	}

	m.orient = Orientation(orient)
	m.valCode = algebra.Code(code)
	m.hyper = hyperFlag != 0

	if m.valCode == algebra.UserDefined {
		if userType.Size != int(userSize) {
			return nil, sparseErrorf("Deserialize", ErrUserTypeSize)
		}
		ut := userType
		m.userType = &ut
	}

	p, err := readInt64Slice(r)
	if err != nil {
		return nil, sparseErrorf("Deserialize", err)
	}
	m.p = p

	if m.hyper {
		h, err := readInt64Slice(r)
		if err != nil {
			return nil, sparseErrorf("Deserialize", err)
		}
		m.h = h
	}

	i, err := readInt64Slice(r)
	if err != nil {
		return nil, sparseErrorf("Deserialize", err)
	}
	m.i = i

	x, err := readBytesSlice(r)
	if err != nil {
		return nil, sparseErrorf("Deserialize", err)
	}
	m.x = x

	if err := m.validateState(); err != nil {
		return nil, sparseErrorf("Deserialize", err)
	}

	return m, nil
}

// validateState checks the monotonicity of p and the range of i against the
// matrix's declared dimensions, guarding against corrupt or adversarial
// serialized input.
func (m *Matrix) validateState() error {
	for k := 1; k < len(m.p); k++ {
		if m.p[k] < m.p[k-1] {
			return ErrCorruptState
		}
	}
	if len(m.p) > 0 && m.p[len(m.p)-1] != int64(len(m.i)) {
		return ErrCorruptState
	}

	_, otherDim := m.dims()
	for _, idx := range m.i {
		real := idx
		if isZombie(real) {
			real = dezombify(real)
		}
		if real < 0 || real >= otherDim {
			return ErrCorruptState
		}
	}

	return nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func writeInt64Slice(buf *bytes.Buffer, s []int64) {
	_ = binary.Write(buf, binary.LittleEndian, int64(len(s)))
	_ = binary.Write(buf, binary.LittleEndian, s)
}

func readInt64Slice(r *bytes.Reader) ([]int64, error) {
	var n int64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	out := make([]int64, n)
	if n > 0 {
		if err := binary.Read(r, binary.LittleEndian, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func writeBytesSlice(buf *bytes.Buffer, s []byte) {
	_ = binary.Write(buf, binary.LittleEndian, int64(len(s)))
	buf.Write(s)
}

func readBytesSlice(r *bytes.Reader) ([]byte, error) {
	var n int64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	if n > 0 {
		if _, err := r.Read(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}
