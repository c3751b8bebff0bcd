// Package overtyped provides the lightweight predecessor of pkg/semtype: a
// generic value holder giving a primitive a distinct nominal type without a
// validation gateway. It is the escape hatch for cases where mixing up two
// string-shaped or int-shaped values must be a compile error, but nothing
// about the value itself needs checking or normalizing.
//
// # Usage
//
// Mint a distinct type by embedding Value in a named struct:
//
//	type Username struct{ overtyped.Value[string] }
//	type City struct{ overtyped.Value[string] }
//
//	u := Username{overtyped.New("gopher")}
//	c := City{overtyped.New("gopher")}
//
// Username and City are now incompatible: assigning or comparing one against
// the other does not compile, even though both wrap the same string. Within a
// single type, Go's == works directly because the struct is comparable.
//
// The zero value is valid and wraps the zero value of T, and the Raw field is
// freely readable and writable; there is deliberately no construction
// discipline here. When construction must be guarded, use pkg/semtype.
//
// # Ordering
//
// Less and Compare are promoted from the embedded Value[T] and accept the
// inner Value[T], so ordering comparisons work across different named
// wrappers over the same T:
//
//	u.Less(c.Value) // compiles: cross-type ordering is permitted
//
// Equality has no such loophole. The asymmetry is intentional and preserved:
// sorting mixed collections by the underlying value is an established usage,
// while cross-type equality silently succeeding is precisely the bug class
// this package exists to prevent.
//
// # Printing
//
// String delegates to the wrapped value, so %v and %s print the payload
// alone. The %#v verb on the outer named type includes the concrete wrapper
// type name, which serves as the debug form.
package overtyped
