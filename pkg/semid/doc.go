// Package semid ships a UUID-backed identifier specification for pkg/semtype.
// Services that key every entity by UUID end up with a sea of interchangeable
// uuid.UUID values; wrapping each entity's identifier in its own semantic
// type makes passing a user ID where an organization ID belongs a compile
// error.
//
// # Usage
//
// UUIDText parses canonical textual input into a uuid.UUID backing value and
// records the version and variant as metadata:
//
//	id, err := semid.NewUUID("2b1f8c04-...")
//	if err != nil {
//		// errors.Is(err, semid.ErrMalformedID)
//	}
//	id.Metadata().Version // uuid.Version
//
// Per-entity identifier types embed the specification:
//
//	type userIDSpec struct{ semid.UUIDText }
//
//	type UserID = semtype.Value[userIDSpec, uuid.UUID, semid.Attrs]
//
//	func ParseUserID(raw string) (UserID, error) {
//		return semtype.New[userIDSpec, string, uuid.UUID, semid.Attrs](raw)
//	}
//
// UserID and any other UUIDText-backed type are mutually incompatible while
// sharing one parsing and validation path.
package semid
