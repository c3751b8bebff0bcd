package semtype

// Number constrains backing types that support arithmetic.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// SignedNumber constrains backing types that additionally support negation
// and magnitude.
type SignedNumber interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

// NumericSpec is satisfied by specifications that opted into derived
// arithmetic. Three conditions meet in this one constraint:
//
//   - the gateway is total over raw == backing, so an arithmetic result can
//     be re-wrapped directly without a validation step that could reject it;
//   - the specification carries no metadata, so there is nothing a product
//     would have to invent;
//   - the specification declares intent via the SemanticNumber marker, so a
//     wrapper never acquires arithmetic by accident of its backing type.
//
// Embedding Unit[B] provides all three.
type NumericSpec[B Number] interface {
	TotalSpec[B, B, NoMeta]
	SemanticNumber()
}

// Mul multiplies backing values and re-wraps the product directly. No
// gateway call is involved: the NumericSpec constraint proves the gateway
// total, so no input could have been rejected.
func Mul[S NumericSpec[B], B Number](x, y Value[S, B, NoMeta]) Value[S, B, NoMeta] {
	return Value[S, B, NoMeta]{backing: x.backing * y.backing}
}

// MulAssign multiplies x's backing value by y's in place, the compound
// counterpart of Mul.
func MulAssign[S NumericSpec[B], B Number](x *Value[S, B, NoMeta], y Value[S, B, NoMeta]) {
	x.backing *= y.backing
}

// Neg returns the wrapper holding the negated backing value.
func Neg[S NumericSpec[B], B SignedNumber](x Value[S, B, NoMeta]) Value[S, B, NoMeta] {
	return Value[S, B, NoMeta]{backing: -x.backing}
}

// Abs returns the wrapper holding the magnitude of the backing value.
func Abs[S NumericSpec[B], B SignedNumber](x Value[S, B, NoMeta]) Value[S, B, NoMeta] {
	if x.backing < 0 {
		return Value[S, B, NoMeta]{backing: -x.backing}
	}
	return x
}

// FromInt attempts to construct a wrapper from an integer. The integer must
// convert into B without loss; otherwise ok is false and no value is
// produced. On success the converted value goes through the total gateway
// like any other raw input.
func FromInt[S NumericSpec[B], B Number](i int64) (Value[S, B, NoMeta], bool) {
	b, ok := exactInt[B](i)
	if !ok {
		return Value[S, B, NoMeta]{}, false
	}
	var spec S
	backing, meta := spec.TotalGateway(b)
	return Value[S, B, NoMeta]{backing: backing, meta: meta}, true
}

// exactInt converts i into B, rejecting any conversion that loses
// information: truncation into a narrower integer, sign loss into an
// unsigned type, or rounding into a float mantissa.
func exactInt[B Number](i int64) (B, bool) {
	b := B(i)
	// A negative int64 survives the round-trip below through 64-bit unsigned
	// widths; the lost sign is the tell.
	if i < 0 && !(b < 0) {
		return b, false
	}
	half := 0.5
	if B(half) != 0 {
		// Float backing. |i| < 1<<63, so a magnitude at or past 1<<63 means
		// the conversion rounded; it also makes the round-trip to int64
		// undefined, so reject before attempting it.
		if float64(b) >= 1<<63 || float64(b) < -(1<<63) {
			return b, false
		}
	}
	if int64(b) != i {
		return b, false
	}
	return b, true
}
