package cacher

import (
	"fmt"

	"go.uber.org/zap"
)

type settings struct {
	logger *zap.Logger
	table  any
}

// Option configures a cacher at construction.
type Option func(*settings)

// WithLogger sets the logger used for hit/miss diagnostics.
// Cachers log at debug level only. The default logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTable sets the backing table of a GenericCacher.
// The table must be empty and its key and value types must match the
// cacher's, otherwise NewGeneric panics. Cacher and KeyedCacher ignore this option.
func WithTable[K comparable, V any](table Table[K, V]) Option {
	return func(s *settings) {
		s.table = table
	}
}

func applyOptions(opts []Option) settings {
	s := settings{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func tableOf[K comparable, V any](s settings) Table[K, V] {
	if s.table == nil {
		return NewMapTable[K, V]()
	}
	table, ok := s.table.(Table[K, V])
	if !ok {
		var (
			k K
			v V
		)
		panic(fmt.Sprintf("cacher: table %T cannot hold %T -> %T", s.table, k, v))
	}
	if n := table.Len(); n != 0 {
		panic(fmt.Sprintf("cacher: table %T already holds %d entries", s.table, n))
	}
	return table
}
