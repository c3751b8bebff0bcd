package overtyped

import (
	"cmp"
	"fmt"
	"hash/maphash"
)

// Value wraps a single ordered value. Embed it in a named struct type to
// create a distinct nominal type; see the package documentation.
type Value[T cmp.Ordered] struct {
	// Raw is the wrapped value. It is exported and mutable: this wrapper
	// carries no validation invariant.
	Raw T
}

// New wraps raw without validation.
func New[T cmp.Ordered](raw T) Value[T] {
	return Value[T]{Raw: raw}
}

// Less orders by the wrapped value. The receiver idiom means any named
// wrapper over the same T can be compared by passing its inner Value.
func (v Value[T]) Less(other Value[T]) bool {
	return v.Raw < other.Raw
}

// Compare returns -1, 0 or +1 comparing wrapped values.
func (v Value[T]) Compare(other Value[T]) int {
	return cmp.Compare(v.Raw, other.Raw)
}

// String renders the wrapped value alone.
func (v Value[T]) String() string {
	return fmt.Sprint(v.Raw)
}

// Hash returns a seed-dependent hash of the wrapped value. Values that are
// equal hash identically under the same seed.
func Hash[T cmp.Ordered](seed maphash.Seed, v Value[T]) uint64 {
	return maphash.Comparable(seed, v.Raw)
}
