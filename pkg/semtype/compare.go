package semtype

import (
	"cmp"
	"hash/maphash"
)

// Equal reports whether two wrappers of the same specification hold equal
// backing values. Metadata does not participate. Because both arguments share
// the specification tag S, wrappers of different specifications cannot be
// compared even when their backing types are identical.
func Equal[S any, B comparable, M any](x, y Value[S, B, M]) bool {
	return x.backing == y.backing
}

// Less reports whether x's backing value orders before y's.
func Less[S any, B cmp.Ordered, M any](x, y Value[S, B, M]) bool {
	return x.backing < y.backing
}

// Compare returns -1, 0 or +1 comparing backing values, suitable for
// slices.SortFunc and friends.
func Compare[S any, B cmp.Ordered, M any](x, y Value[S, B, M]) int {
	return cmp.Compare(x.backing, y.backing)
}

// Hash returns a seed-dependent hash of the backing value. Wrappers that
// compare Equal hash identically under the same seed.
func Hash[S any, B comparable, M any](seed maphash.Seed, v Value[S, B, M]) uint64 {
	return maphash.Comparable(seed, v.backing)
}
