package semtext

import (
	"errors"
	"net/mail"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/semtype/pkg/semtype"
)

// NonEmpty rejects input that is empty after whitespace trimming.
type NonEmpty struct{}

func (NonEmpty) Gateway(raw string) (string, semtype.NoMeta, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", semtype.NoMeta{}, ErrEmpty
	}
	return trimmed, semtype.NoMeta{}, nil
}

// NonEmptyString is guaranteed to hold a non-blank, trimmed string.
type NonEmptyString = semtype.Value[NonEmpty, string, semtype.NoMeta]

// NewNonEmpty validates raw into a NonEmptyString.
func NewNonEmpty(raw string) (NonEmptyString, error) {
	return semtype.New[NonEmpty, string, string, semtype.NoMeta](raw)
}

// Trimmed strips surrounding whitespace. Total: every input normalizes.
type Trimmed struct{}

func (Trimmed) TotalGateway(raw string) (string, semtype.NoMeta) {
	return strings.TrimSpace(raw), semtype.NoMeta{}
}

// TrimmedString holds a string with no surrounding whitespace.
type TrimmedString = semtype.Value[Trimmed, string, semtype.NoMeta]

// NewTrimmed normalizes raw into a TrimmedString.
func NewTrimmed(raw string) TrimmedString {
	return semtype.NewTotal[Trimmed, string, string, semtype.NoMeta](raw)
}

// NFC canonically composes Unicode text, so byte-wise comparison of the
// backing value matches canonical equivalence. Total.
type NFC struct{}

func (NFC) TotalGateway(raw string) (string, semtype.NoMeta) {
	return norm.NFC.String(raw), semtype.NoMeta{}
}

// NFCString holds text in Unicode Normalization Form C.
type NFCString = semtype.Value[NFC, string, semtype.NoMeta]

// NewNFC normalizes raw into an NFCString.
func NewNFC(raw string) NFCString {
	return semtype.NewTotal[NFC, string, string, semtype.NoMeta](raw)
}

// Folded applies Unicode case folding, the canonical form for
// case-insensitive identifiers such as usernames. Total.
type Folded struct{}

func (Folded) TotalGateway(raw string) (string, semtype.NoMeta) {
	return cases.Fold().String(raw), semtype.NoMeta{}
}

// FoldedString holds case-folded text: two inputs differing only by case
// produce equal backing values.
type FoldedString = semtype.Value[Folded, string, semtype.NoMeta]

// NewFolded normalizes raw into a FoldedString.
func NewFolded(raw string) FoldedString {
	return semtype.NewTotal[Folded, string, string, semtype.NoMeta](raw)
}

// Mailbox is the metadata an Email gateway produces: the address split at
// the last parse stage, with the domain already lowercased.
type Mailbox struct {
	Local  string
	Domain string
}

// Email validates an address with the RFC 5322 parser, then applies the
// stricter checks typical web registration needs: a single @, a non-empty
// local part, and a dotted domain with no empty labels. The backing value is
// the bare address with a lowercased domain.
type Email struct{}

func (Email) Gateway(raw string) (string, Mailbox, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", Mailbox{}, errors.Join(ErrInvalidEmail, err)
	}

	local, domain, found := strings.Cut(addr.Address, "@")
	if !found || local == "" {
		return "", Mailbox{}, ErrInvalidEmail
	}
	domain = strings.ToLower(domain)

	if err := semtype.Apply(domain,
		semtype.Check(func(d string) bool { return strings.Contains(d, ".") }, ErrInvalidEmail),
		semtype.Check(func(d string) bool {
			return !strings.HasPrefix(d, ".") && !strings.HasSuffix(d, ".") && !strings.Contains(d, "..")
		}, ErrInvalidEmail),
	); err != nil {
		return "", Mailbox{}, err
	}

	normalized := local + "@" + domain
	return normalized, Mailbox{Local: local, Domain: domain}, nil
}

// EmailAddress is guaranteed to hold a parseable address with a normalized
// domain; its metadata carries the local/domain split.
type EmailAddress = semtype.Value[Email, string, Mailbox]

// NewEmail validates raw into an EmailAddress.
func NewEmail(raw string) (EmailAddress, error) {
	return semtype.New[Email, string, string, Mailbox](raw)
}
