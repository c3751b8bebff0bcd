// Package semtext ships ready-made text specifications for pkg/semtype:
// validated and normalized string types that cover the common cases where a
// plain string is too permissive.
//
// Two kinds of specification live here:
//
//   - Total normalizers, whose gateway cannot fail: Trimmed (whitespace
//     trimming), NFC (Unicode canonical composition via x/text), Folded
//     (Unicode case folding via x/text, for case-insensitive identifiers).
//   - Validators, whose gateway rejects bad input with a sentinel error:
//     NonEmpty and Email.
//
// # Usage
//
// Each specification comes with a wrapper alias and a constructor for direct
// use:
//
//	name, err := semtext.NewNonEmpty(input)
//	if err != nil {
//		// errors.Is(err, semtext.ErrEmpty)
//	}
//
// More often a service wants its own nominal type rather than the generic
// one. Embed a specification to inherit its gateway under a new identity:
//
//	type usernameSpec struct{ semtext.Folded }
//
//	type Username = semtype.Value[usernameSpec, string, semtype.NoMeta]
//
//	func NewUsername(raw string) Username {
//		return semtype.NewTotal[usernameSpec, string, string, semtype.NoMeta](raw)
//	}
//
// Username values are case-insensitive by construction and incompatible with
// every other Folded-backed type in the program.
//
// # Error Handling
//
// Validation failures surface as sentinel errors (ErrEmpty, ErrInvalidEmail)
// matched with errors.Is; parser detail from the standard library is joined
// onto the sentinel where available.
package semtext
