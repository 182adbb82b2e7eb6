package cacher

import "fmt"

// Result is the outcome of a computation that can fail: either a value or an
// error. A GenericCacher whose values are Results caches failures too.
type Result[V any] struct {
	value V
	err   error
}

// Ok returns a successful Result holding v.
func Ok[V any](v V) Result[V] {
	return Result[V]{value: v}
}

// Fail returns a failed Result holding err. err must not be nil.
func Fail[V any](err error) Result[V] {
	if err == nil {
		panic("cacher: Fail with nil error")
	}
	return Result[V]{err: err}
}

// ResultOf turns a (value, error) pair into a Result.
func ResultOf[V any](v V, err error) Result[V] {
	if err != nil {
		return Result[V]{value: v, err: err}
	}
	return Ok(v)
}

// IsOk reports whether r holds a value rather than an error.
func (r Result[V]) IsOk() bool {
	return r.err == nil
}

// Err returns the error of a failed Result, or nil.
func (r Result[V]) Err() error {
	return r.err
}

// Unwrap returns r as a (value, error) pair.
func (r Result[V]) Unwrap() (V, error) {
	return r.value, r.err
}

// Must returns the value of a successful Result and panics on a failed one.
func (r Result[V]) Must() V {
	if r.err != nil {
		panic(fmt.Errorf("cacher: unwrapped a failed result: %w", r.err))
	}
	return r.value
}

// OrElse returns the value of a successful Result, or whatever orElse
// makes of the error of a failed one.
func (r Result[V]) OrElse(orElse func(error) V) V {
	if r.err != nil {
		return orElse(r.err)
	}
	return r.value
}
