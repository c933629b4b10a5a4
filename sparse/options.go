package sparse

// Option configures a new Matrix at construction time. Unlike the teacher's
// graph-adapter options, these never need runtime panics: every setter here
// accepts any value of its field's type.
type Option func(*config)

type config struct {
	orient       Orientation
	hyperRatio   float64
	startHyper   bool
	userType     *UserType
	pendingLimit int
}

// DefaultHyperRatio is the populated/dimension ratio below which Wait
// switches a matrix into hypersparse form, and above which it switches back
// to full form. A matrix with fewer than dimension*DefaultHyperRatio
// populated vectors pays for an h indirection array instead of an
// O(dimension) p array.
const DefaultHyperRatio = 0.0625

// DefaultPendingLimit bounds how many pending tuples accumulate before a
// mutating call forces an implicit Wait, keeping the queue from growing
// unboundedly under a long run of SetElement calls with no explicit sync
// point.
const DefaultPendingLimit = 1 << 16

func defaultConfig() config {
	return config{
		orient:       ByCol,
		hyperRatio:   DefaultHyperRatio,
		startHyper:   false,
		pendingLimit: DefaultPendingLimit,
	}
}

// WithOrientation selects CSC (ByCol, the default) or CSR (ByRow) storage.
func WithOrientation(o Orientation) Option {
	return func(c *config) { c.orient = o }
}

// WithHyperRatio overrides DefaultHyperRatio. Values <= 0 disable automatic
// hypersparse conversion entirely (the matrix stays in whatever form
// WithHypersparse selects).
func WithHyperRatio(ratio float64) Option {
	return func(c *config) { c.hyperRatio = ratio }
}

// WithHypersparse forces the matrix to start in hypersparse form regardless
// of its initial population.
func WithHypersparse() Option {
	return func(c *config) { c.startHyper = true }
}

// WithUserType declares the matrix's value domain as a fixed-size opaque
// type rather than one of the built-in algebra.Code values.
func WithUserType(ut UserType) Option {
	return func(c *config) { c.userType = &ut }
}

// WithPendingLimit overrides DefaultPendingLimit.
func WithPendingLimit(n int) Option {
	return func(c *config) { c.pendingLimit = n }
}

func gatherOptions(opts ...Option) config {
	c := defaultConfig()
	for _, o := range opts {
		o(&c)
	}
	return c
}
