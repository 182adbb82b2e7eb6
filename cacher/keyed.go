package cacher

// KeyedCacher holds one result of its calculation per distinct argument.
// A stored result is never replaced or removed.
type KeyedCacher struct {
	meter
	calculation func(uint32) uint32
	values      map[uint32]uint32
}

// NewKeyed returns a KeyedCacher with no stored results.
func NewKeyed(calculation func(uint32) uint32, opts ...Option) *KeyedCacher {
	if calculation == nil {
		panic("cacher: nil calculation")
	}
	s := applyOptions(opts)
	return &KeyedCacher{
		meter:       newMeter("keyed", s.logger),
		calculation: calculation,
		values:      make(map[uint32]uint32),
	}
}

// Value returns the result stored for arg. The calculation runs only the
// first time a given arg is seen.
func (c *KeyedCacher) Value(arg uint32) uint32 {
	if v, ok := c.values[arg]; ok {
		c.hit(arg)
		return v
	}
	var v uint32
	c.miss(arg, func() {
		v = c.calculation(arg)
	})
	c.values[arg] = v
	return v
}

// Len returns the number of stored results.
func (c *KeyedCacher) Len() int {
	return len(c.values)
}
