package cacher

// Cacher holds at most one result of its calculation.
//
// The first call to Value runs the calculation and fills the slot. Every
// later call returns the slot's value as is, whatever argument it is given,
// so results for any argument other than the first are stale. Use
// KeyedCacher or GenericCacher when results must follow the argument.
type Cacher struct {
	meter
	calculation func(uint32) uint32
	value       uint32
	populated   bool
}

// New returns a Cacher with an empty slot. The calculation is not run until
// the first call to Value.
func New(calculation func(uint32) uint32, opts ...Option) *Cacher {
	if calculation == nil {
		panic("cacher: nil calculation")
	}
	s := applyOptions(opts)
	return &Cacher{
		meter:       newMeter("single", s.logger),
		calculation: calculation,
	}
}

// Value returns the cached value, running the calculation with arg only if
// the slot is still empty.
func (c *Cacher) Value(arg uint32) uint32 {
	if c.populated {
		c.hit(arg)
		return c.value
	}
	c.miss(arg, func() {
		c.value = c.calculation(arg)
	})
	c.populated = true
	return c.value
}

// Populated reports whether the slot holds a value.
func (c *Cacher) Populated() bool {
	return c.populated
}
