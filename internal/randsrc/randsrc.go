// Package randsrc is the injectable random source behind uniform picks.
package randsrc

import "math/rand"

// Source is the subset of *rand.Rand used for uniform picks.
type Source interface {
	Intn(n int) int
}

// global delegates to the math/rand top-level functions, which are
// auto-seeded and safe for concurrent use.
type global struct{}

func (global) Intn(n int) int { return rand.Intn(n) }

// Default returns the shared source used when none is injected.
func Default() Source {
	return global{}
}

// OrDefault returns src, or the shared source when src is nil.
func OrDefault(src Source) Source {
	if src == nil {
		return global{}
	}
	return src
}

// Pick returns one element of a non-empty pool chosen by src.
func Pick[T any](src Source, pool []T) T {
	return pool[src.Intn(len(pool))]
}
