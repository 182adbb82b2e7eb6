package cacher

// GenericCacher memoizes a computation from K to V.
//
// K must be comparable; two keys hit the same entry iff they are ==.
// Values are copied in and out as ordinary Go values, so a V holding
// pointers, slices or maps shares its backing data with every caller.
type GenericCacher[K comparable, V any] struct {
	meter
	calculation func(K) V
	table       Table[K, V]
}

// NewGeneric returns a GenericCacher backed by a MapTable, or by the table
// given through WithTable. A table given through WithTable must be empty.
func NewGeneric[K comparable, V any](calculation func(K) V, opts ...Option) *GenericCacher[K, V] {
	if calculation == nil {
		panic("cacher: nil calculation")
	}
	s := applyOptions(opts)
	return &GenericCacher[K, V]{
		meter:       newMeter("generic", s.logger),
		calculation: calculation,
		table:       tableOf[K, V](s),
	}
}

// Value returns the value stored for arg, running the calculation and storing
// its result on the first call for arg. A Result holding a failure is stored
// like any other value.
func (c *GenericCacher[K, V]) Value(arg K) V {
	if v, ok := c.table.Load(arg); ok {
		c.hit(arg)
		return v
	}
	var v V
	c.miss(arg, func() {
		v = c.calculation(arg)
	})
	if !c.table.InsertIfAbsent(arg, v) {
		// a nested call for arg got there first; its value stands
		v, _ = c.table.Load(arg)
	}
	return v
}

// Len returns the number of populated keys.
func (c *GenericCacher[K, V]) Len() int {
	return c.table.Len()
}
