package semid

import (
	"errors"

	"github.com/google/uuid"

	"github.com/dmitrymomot/semtype/pkg/semtype"
)

// ErrMalformedID is returned when input does not parse as a UUID.
var ErrMalformedID = errors.New("malformed identifier")

// Attrs is the metadata a UUIDText gateway produces alongside the parsed
// identifier.
type Attrs struct {
	Version uuid.Version
	Variant uuid.Variant
}

// UUIDText parses textual input into a uuid.UUID backing value. The parser
// accepts the canonical hyphenated form plus the common hashless and
// urn-prefixed variants, so the backing value is the single normalized
// representation regardless of input spelling.
type UUIDText struct{}

func (UUIDText) Gateway(raw string) (uuid.UUID, Attrs, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, Attrs{}, errors.Join(ErrMalformedID, err)
	}
	return id, Attrs{Version: id.Version(), Variant: id.Variant()}, nil
}

// UUID is the generic identifier wrapper; most callers should mint their own
// nominal type instead (see the package documentation).
type UUID = semtype.Value[UUIDText, uuid.UUID, Attrs]

// NewUUID validates raw into a UUID wrapper.
func NewUUID(raw string) (UUID, error) {
	return semtype.New[UUIDText, string, uuid.UUID, Attrs](raw)
}
