package cacher

import "fmt"

// Tableize returns a function that behaves like pureFn but runs it at most
// once per distinct argument. The returned function may be referenced from
// inside pureFn for recursive memoization.
func Tableize[K comparable, V any](pureFn func(K) V, opts ...Option) func(K) V {
	return NewGeneric(pureFn, opts...).Value
}

// TableizeErr is Tableize for functions with an error output. Both outputs are
// cached, so an argument that failed once keeps failing with the same error.
//
// A table passed through WithTable must hold Result[V] values.
func TableizeErr[K comparable, V any](pureFn func(K) (V, error), opts ...Option) func(K) (V, error) {
	tableized := NewGeneric(
		func(k K) Result[V] {
			v, err := pureFn(k)
			return ResultOf(v, err)
		},
		opts...,
	)
	return func(k K) (V, error) {
		return tableized.Value(k).Unwrap()
	}
}

// TableizeStringer is Tableize for argument types that are not comparable,
// such as structs holding slices. Arguments are keyed by their String output,
// so two arguments with the same String are treated as the same argument.
//
// A table passed through WithTable must use string keys.
func TableizeStringer[K fmt.Stringer, V any](pureFn func(K) V, opts ...Option) func(K) V {
	var arg K
	tableized := NewGeneric(
		func(string) V {
			return pureFn(arg)
		},
		opts...,
	)
	return func(k K) V {
		arg = k
		return tableized.Value(k.String())
	}
}
