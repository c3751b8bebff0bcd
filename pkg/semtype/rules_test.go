package semtype_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/dmitrymomot/semtype/pkg/semtype"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errTooShort  = errors.New("too short")
	errHasSpaces = errors.New("contains spaces")
)

func minLen(n int) semtype.Rule[string] {
	return semtype.Check(func(s string) bool { return len(s) >= n }, errTooShort)
}

func noSpaces() semtype.Rule[string] {
	return semtype.Check(func(s string) bool { return !strings.ContainsRune(s, ' ') }, errHasSpaces)
}

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantErrs []error
	}{
		{
			name:  "all rules pass",
			input: "gopher",
		},
		{
			name:     "single failure",
			input:    "ab",
			wantErrs: []error{errTooShort},
		},
		{
			name:     "multiple failures aggregated",
			input:    "a b",
			wantErrs: []error{errTooShort, errHasSpaces},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := semtype.Apply(tt.input, minLen(5), noSpaces())
			if len(tt.wantErrs) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestApplyNoRules(t *testing.T) {
	t.Parallel()

	assert.NoError(t, semtype.Apply("anything"))
}

func TestApplyNumericCandidate(t *testing.T) {
	t.Parallel()

	errNotPositive := errors.New("must be positive")
	positive := semtype.Check(func(n int) bool { return n > 0 }, errNotPositive)

	assert.NoError(t, semtype.Apply(3, positive))
	assert.ErrorIs(t, semtype.Apply(-3, positive), errNotPositive)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	got := semtype.Normalize("  Mixed CASE   input\n",
		strings.TrimSpace,
		func(s string) string { return strings.Join(strings.Fields(s), " ") },
		strings.ToLower,
	)
	assert.Equal(t, "mixed case input", got)

	// Order matters: transforms run left to right.
	assert.Equal(t, "ABC", semtype.Normalize("abc", strings.ToUpper))
	assert.Equal(t, "abc", semtype.Normalize("ABC", strings.ToUpper, strings.ToLower))
}

func TestNormalizeNoTransforms(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, semtype.Normalize(42))
}
