// Package cacher memoizes single-argument computations by their input.
//
// A cacher owns a computation handed to it at construction and a cache that
// starts empty. The first Value call for a key runs the computation and stores
// the result; every later call for that key returns the stored result without
// running the computation again. There is no eviction and no invalidation:
// once a key is populated it stays populated for the lifetime of the cacher.
//
// Three cachers are provided, each a refinement of the previous one:
//   - Cacher: a single slot. It remembers the first result only and returns it
//     for every later argument, whatever that argument is.
//   - KeyedCacher: a map from uint32 argument to uint32 result.
//   - GenericCacher: the same algorithm over any comparable key and any value,
//     backed by a pluggable Table.
//
// Computations that can fail return a Result. A failed Result is cached and
// returned exactly like a successful one; nothing is retried.
//
// The Tableize family wraps a function so that it can be called as before
// while being served from a GenericCacher:
//
//	var fib func(int) int
//	fib = cacher.Tableize(func(n int) int {
//	    if n <= 1 {
//	        return n
//	    }
//	    return fib(n-1) + fib(n-2)
//	})
//
// Cachers are not safe for concurrent use. Value runs the computation
// synchronously on the calling goroutine.
//
// WARNING: Only memoize computations whose result depends on the argument alone.
package cacher
