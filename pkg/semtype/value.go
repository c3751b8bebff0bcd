package semtype

import "fmt"

// Value is a semantic wrapper around a backing value of type B and metadata
// of type M, tagged by the specification type S. S is a phantom parameter:
// it stores nothing, but it makes Value instantiations over distinct
// specifications distinct Go types, so cross-specification assignment or
// comparison fails to compile.
//
// Both fields are unexported, so outside this package the only way to obtain
// a non-zero Value is through New or NewTotal, and every stored backing value
// passed through its specification's gateway. Go's universal zero value is
// the one hole the compiler leaves open: a declared-but-unassigned Value
// holds B's zero value. Specifications for which the zero backing value is
// invalid should treat it as the absent sentinel, as uuid.Nil does.
type Value[S, B, M any] struct {
	backing B
	meta    M
}

// New constructs a wrapper by running raw input through S's gateway. On
// failure the gateway's error is returned untouched and the returned Value
// must be discarded.
//
// Go cannot infer B and M from S alone, so instantiation names all four type
// arguments; the idiom is to do this once, inside a per-type constructor:
//
//	func NewUsername(raw string) (Username, error) {
//		return semtype.New[usernameSpec, string, string, semtype.NoMeta](raw)
//	}
func New[S Spec[R, B, M], R, B, M any](raw R) (Value[S, B, M], error) {
	var spec S
	backing, meta, err := spec.Gateway(raw)
	if err != nil {
		return Value[S, B, M]{}, err
	}
	return Value[S, B, M]{backing: backing, meta: meta}, nil
}

// NewTotal constructs a wrapper through a total gateway. There is no error
// result because the gateway's signature admits no failure.
func NewTotal[S TotalSpec[R, B, M], R, B, M any](raw R) Value[S, B, M] {
	var spec S
	backing, meta := spec.TotalGateway(raw)
	return Value[S, B, M]{backing: backing, meta: meta}
}

// Backing returns the stored gateway-produced value.
func (v Value[S, B, M]) Backing() B {
	return v.backing
}

// Metadata returns the auxiliary data the gateway produced alongside the
// backing value.
func (v Value[S, B, M]) Metadata() M {
	return v.meta
}

// String renders the backing value. The specification tag is deliberately
// omitted; use %#v when the concrete wrapper type matters.
func (v Value[S, B, M]) String() string {
	return fmt.Sprint(v.backing)
}
