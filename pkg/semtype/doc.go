// Package semtype provides compile-time semantic typing: it wraps a primitive
// value (a string, a number, an identifier) inside a distinct nominal type so
// that values with different meanings cannot be mixed up even when they share
// the same underlying representation. "Meters" and "feet" are both float64,
// "username" and "SQL fragment" are both string, yet confusing one for the
// other should be a compile error, not a production incident.
//
// The central guarantee is gated construction: a wrapper value cannot exist
// unless its raw input passed through the specification's gateway, the single
// pure function that validates and normalizes input. Everything downstream of
// the gateway trusts its output, so validation lives in exactly one place.
//
// # Architecture
//
// Three pieces cooperate:
//
//   - A specification: a zero-sized, stateless struct type implementing
//     Spec (fallible gateway) or TotalSpec (gateway that cannot fail).
//     The struct type itself is the nominal tag; two specifications over
//     an identical backing type still produce incompatible wrapper types.
//   - Value[S, B, M]: the generic wrapper. It stores only the gateway's
//     successful output (backing value plus metadata) in unexported fields,
//     and is constructed exclusively through New or NewTotal.
//   - Capability functions: Equal, Less, Compare, Hash, Mul, Neg, Abs and
//     friends are free functions whose constraints grant an operation only
//     when the backing type natively supports it and, for arithmetic, only
//     when the specification opts in and its gateway is total.
//
// Go has no conditional method conformance, so capabilities are expressed as
// constrained package-level functions rather than methods. The compiler still
// enforces the same contract: calling Mul on a wrapper whose specification
// lacks the numeric marker, or Equal across two different specifications,
// simply does not compile.
//
// # Usage
//
// Defining a semantic type takes a spec struct, a type alias, and a
// constructor:
//
//	type metersSpec struct{ semtype.Unit[float64] }
//
//	type Meters = semtype.Value[metersSpec, float64, semtype.NoMeta]
//
//	func NewMeters(v float64) Meters {
//		return semtype.NewTotal[metersSpec, float64, float64, semtype.NoMeta](v)
//	}
//
// A validating specification implements the gateway by hand:
//
//	type portSpec struct{}
//
//	func (portSpec) Gateway(raw int) (uint16, semtype.NoMeta, error) {
//		if raw < 1 || raw > 65535 {
//			return 0, semtype.NoMeta{}, ErrInvalidPort
//		}
//		return uint16(raw), semtype.NoMeta{}, nil
//	}
//
// Ready-made specifications for common cases live in pkg/semtext (normalized
// and validated strings) and pkg/semid (UUID-backed identifiers); embed them
// in a local struct type to mint a distinct nominal type with an inherited
// gateway.
//
// # Totality
//
// A total gateway is one that can never reject input. Rather than carrying an
// error type proven uninhabited, a TotalSpec declares a gateway method with
// no error result at all, so infallibility is visible in the signature and
// NewTotal returns the wrapper directly. Totality is also the license for
// derived arithmetic: Mul re-wraps the product of two backing values without
// re-validation, which is only sound when nothing could have been rejected in
// the first place.
//
// # Error Handling
//
// Invalid raw input is a normal, typed outcome of New, never a panic. The
// gateway's error is returned untouched, so callers match it with errors.Is
// against the specification package's sentinel errors.
//
// # Concurrency
//
// All values are immutable after construction and contain only value-semantic
// data; they may be copied and shared across goroutines freely. The package
// keeps no state of its own.
package semtype
