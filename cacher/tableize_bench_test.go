package cacher_test

import (
	"testing"

	"github.com/on-the-ground/cacher_go/cacher"
)

func naiveFib(n int) int {
	if n <= 1 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

func BenchmarkNaiveFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveFib(20)
	}
}

func BenchmarkTableizedFib20(b *testing.B) {
	var tableFib func(int) int
	tableFib = cacher.Tableize(func(n int) int {
		if n <= 1 {
			return n
		}
		return tableFib(n-1) + tableFib(n-2)
	})

	for i := 0; i < b.N; i++ {
		_ = tableFib(20)
	}
}

type strPair struct {
	a, b string
}

func naiveLevenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if a[0] == b[0] {
		return naiveLevenshtein(a[1:], b[1:])
	}
	return 1 + min(
		naiveLevenshtein(a[1:], b),
		naiveLevenshtein(a, b[1:]),
		naiveLevenshtein(a[1:], b[1:]),
	)
}

func BenchmarkNaiveLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveLevenshtein("kitten", "sitting")
	}
}

func BenchmarkTableizedLevenshtein(b *testing.B) {
	var lev func(strPair) int
	lev = cacher.Tableize(func(p strPair) int {
		if len(p.a) == 0 {
			return len(p.b)
		}
		if len(p.b) == 0 {
			return len(p.a)
		}
		if p.a[0] == p.b[0] {
			return lev(strPair{p.a[1:], p.b[1:]})
		}
		return 1 + min(
			lev(strPair{p.a[1:], p.b}),
			lev(strPair{p.a, p.b[1:]}),
			lev(strPair{p.a[1:], p.b[1:]}),
		)
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lev(strPair{"kitten", "sitting"})
	}
}

func BenchmarkKeyedCacher(b *testing.B) {
	c := cacher.NewKeyed(func(n uint32) uint32 { return n * 3 })
	for i := 0; i < b.N; i++ {
		_ = c.Value(uint32(i % 64))
	}
}
