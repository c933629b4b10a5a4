package ops

// AxBMethod selects which of the three mxm algorithms of spec §4.3 an
// orchestrator should use.
type AxBMethod int

const (
	// AxBAuto lets Mxm pick Gustavson, Dot, or Heap from a cheap cost
	// heuristic over the operands' density and hypersparsity.
	AxBAuto AxBMethod = iota
	AxBGustavson
	AxBDot
	AxBHeap
)

// Descriptor configures one operation call per spec §6's enumerated
// options: {OUTPUT: REPLACE}, {MASK: STRUCTURE|VALUE, COMPLEMENT},
// {INP0: TRANSPOSE}, {INP1: TRANSPOSE}, {AxB_METHOD: ...}, {NTHREADS: n}.
// The zero Descriptor is the all-defaults case: no replace, value mask, no
// complement, no transpose, AUTO method, and NThreads 0.
type Descriptor struct {
	Replace         bool
	MaskStructure   bool
	MaskComplement  bool
	TransposeInput0 bool
	TransposeInput1 bool
	AxBMethod       AxBMethod
	NThreads        int
}

// Option configures a Descriptor via functional options, the same shape
// package sparse uses for Matrix construction options.
type Option func(*Descriptor)

// WithReplace sets {OUTPUT: REPLACE}: positions of C not admitted by the
// mask are cleared before the merge, instead of left untouched.
func WithReplace() Option { return func(d *Descriptor) { d.Replace = true } }

// WithMaskStructure sets {MASK: STRUCTURE}: only presence in M matters, not
// its value.
func WithMaskStructure() Option { return func(d *Descriptor) { d.MaskStructure = true } }

// WithMaskComplement sets {MASK: COMPLEMENT}: the mask's admit decision is
// inverted.
func WithMaskComplement() Option { return func(d *Descriptor) { d.MaskComplement = true } }

// WithTransposeInput0 sets {INP0: TRANSPOSE}: the first matrix operand (A
// in mxm/ewise, A in apply/select/transpose) is used transposed.
func WithTransposeInput0() Option { return func(d *Descriptor) { d.TransposeInput0 = true } }

// WithTransposeInput1 sets {INP1: TRANSPOSE}: the second matrix operand (B
// in mxm/ewise) is used transposed.
func WithTransposeInput1() Option { return func(d *Descriptor) { d.TransposeInput1 = true } }

// WithAxBMethod sets {AxB_METHOD: ...}, overriding Mxm's AUTO selection.
func WithAxBMethod(m AxBMethod) Option { return func(d *Descriptor) { d.AxBMethod = m } }

// WithNThreads sets {NTHREADS: n} on the Descriptor. No orchestrator in
// this package reads NThreads: every call runs on all workers of the pool
// it is given, so this option does not change the worker count.
func WithNThreads(n int) Option { return func(d *Descriptor) { d.NThreads = n } }

// NewDescriptor assembles a Descriptor from the given options, starting
// from the all-defaults zero value.
func NewDescriptor(opts ...Option) Descriptor {
	var d Descriptor
	for _, o := range opts {
		o(&d)
	}
	return d
}
