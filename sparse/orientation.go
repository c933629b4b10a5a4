package sparse

// Orientation selects which dimension is compressed into vectors:
// ByCol stores compressed sparse columns (CSC), ByRow compressed sparse
// rows (CSR). Kernels that favor one orientation (Gustavson's method wants
// ByCol for A and B) convert or request a transposed view rather than
// assume a fixed layout.
type Orientation int

const (
	ByCol Orientation = iota
	ByRow
)

func (o Orientation) String() string {
	if o == ByRow {
		return "ByRow"
	}
	return "ByCol"
}

// Other flips ByCol<->ByRow.
func (o Orientation) Other() Orientation {
	if o == ByRow {
		return ByCol
	}
	return ByRow
}
