package semtext_test

import (
	"testing"

	"github.com/dmitrymomot/semtype/pkg/semtext"
	"github.com/dmitrymomot/semtype/pkg/semtype"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNonEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "plain value",
			raw:  "ok",
			want: "ok",
		},
		{
			name: "trims surrounding whitespace",
			raw:  "  ok \n",
			want: "ok",
		},
		{
			name:    "empty rejected",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "whitespace only rejected",
			raw:     " \t ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := semtext.NewNonEmpty(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, semtext.ErrEmpty)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Backing())
		})
	}
}

func TestNewTrimmed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "padded", semtext.NewTrimmed("  padded\t").Backing())
	assert.Equal(t, "", semtext.NewTrimmed("   ").Backing())
}

func TestNewNFC(t *testing.T) {
	t.Parallel()

	// "é" as combining sequence vs precomposed: equal after NFC.
	decomposed := semtext.NewNFC("café")
	precomposed := semtext.NewNFC("café")

	assert.Equal(t, "café", decomposed.Backing())
	assert.True(t, semtype.Equal(decomposed, precomposed))
}

func TestNewFolded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "ascii lowercasing",
			raw:  "GoPher",
			want: "gopher",
		},
		{
			name: "full case folding",
			raw:  "Straße",
			want: "strasse",
		},
		{
			name: "already folded",
			raw:  "gopher",
			want: "gopher",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, semtext.NewFolded(tt.raw).Backing())
		})
	}
}

func TestFoldedEquality(t *testing.T) {
	t.Parallel()

	assert.True(t, semtype.Equal(semtext.NewFolded("Admin"), semtext.NewFolded("ADMIN")))
}

func TestNewEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		raw        string
		want       string
		wantLocal  string
		wantDomain string
		wantErr    bool
	}{
		{
			name:       "plain address",
			raw:        "gopher@example.com",
			want:       "gopher@example.com",
			wantLocal:  "gopher",
			wantDomain: "example.com",
		},
		{
			name:       "domain lowercased",
			raw:        "gopher@EXAMPLE.Com",
			want:       "gopher@example.com",
			wantLocal:  "gopher",
			wantDomain: "example.com",
		},
		{
			name:       "display name stripped",
			raw:        "Gopher <gopher@example.com>",
			want:       "gopher@example.com",
			wantLocal:  "gopher",
			wantDomain: "example.com",
		},
		{
			name:    "empty rejected",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "missing domain dot",
			raw:     "gopher@localhost",
			wantErr: true,
		},
		{
			name:    "empty domain label",
			raw:     "gopher@example..com",
			wantErr: true,
		},
		{
			name:    "not an address",
			raw:     "not-an-email",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := semtext.NewEmail(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, semtext.ErrInvalidEmail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Backing())
			assert.Equal(t, semtext.Mailbox{Local: tt.wantLocal, Domain: tt.wantDomain}, got.Metadata())
		})
	}
}

func TestEmbeddedSpecIdentity(t *testing.T) {
	t.Parallel()

	type usernameSpec struct{ semtext.Folded }
	type channelSpec struct{ semtext.Folded }

	u := semtype.NewTotal[usernameSpec, string, string, semtype.NoMeta]("Gopher")
	c := semtype.NewTotal[channelSpec, string, string, semtype.NoMeta]("Gopher")

	assert.Equal(t, u.Backing(), c.Backing())
	assert.NotEqual(t, any(u), any(c))
}
