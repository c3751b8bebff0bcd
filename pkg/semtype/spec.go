package semtype

// NoMeta is the metadata type for specifications whose gateway produces no
// auxiliary data alongside the backing value.
type NoMeta struct{}

// Spec describes how raw input of type R becomes a guaranteed-valid backing
// value of type B plus metadata of type M.
//
// Implementations must be zero-sized, stateless struct types: the gateway is
// invoked on the zero value, and the struct type itself serves as the nominal
// tag distinguishing one semantic type from another. The gateway must be a
// pure function of its input.
type Spec[R, B, M any] interface {
	// Gateway validates and normalizes raw input. It is the only place raw
	// input is inspected; a non-nil error means no wrapper value is produced.
	Gateway(raw R) (B, M, error)
}

// TotalSpec describes a specification whose gateway cannot fail. The absence
// of an error result in the method signature is what makes totality
// statically checkable: there is no failure channel to inspect or ignore.
type TotalSpec[R, B, M any] interface {
	// TotalGateway normalizes raw input into the stored representation.
	TotalGateway(raw R) (B, M)
}

// Passthrough is a total gateway that stores raw input unchanged. Embed it in
// a local struct type to mint a purely nominal wrapper over B:
//
//	type accountSlugSpec struct{ semtype.Passthrough[string] }
type Passthrough[B any] struct{}

func (Passthrough[B]) TotalGateway(raw B) (B, NoMeta) {
	return raw, NoMeta{}
}

// Unit is a Passthrough over a numeric backing type that additionally opts
// into derived arithmetic. It is the building block for units-of-measure
// style types, where the whole point is keeping structurally identical
// numbers apart:
//
//	type metersSpec struct{ semtype.Unit[float64] }
//	type feetSpec struct{ semtype.Unit[float64] }
type Unit[B Number] struct{ Passthrough[B] }

func (Unit[B]) SemanticNumber() {}
