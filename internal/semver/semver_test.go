package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid versions", func(t *testing.T) {
		tests := []struct {
			in   string
			want Version
		}{
			{"1.2.3", Version{1, 2, 3}},
			{"0.0.0", Version{0, 0, 0}},
			{"10.20.30", Version{10, 20, 30}},
			{"  1.2.3\n", Version{1, 2, 3}},
			{"2.9.9", Version{2, 9, 9}},
		}
		for _, tt := range tests {
			got, err := Parse(tt.in)
			require.NoError(t, err, "Parse(%q)", tt.in)
			assert.Equal(t, tt.want, got, "Parse(%q)", tt.in)
		}
	})

	t.Run("invalid versions", func(t *testing.T) {
		inputs := []string{
			"",
			"1",
			"1.2",
			"1.2.3.4",
			"1.x.3",
			"-1.2.3",
			"1.-2.3",
			"+1.2.3",
			"1.2.3-beta",
			"v1.2.3",
			"1..3",
		}
		for _, in := range inputs {
			_, err := Parse(in)
			require.Error(t, err, "Parse(%q)", in)
			assert.ErrorIs(t, err, ErrInvalidFormat, "Parse(%q)", in)
		}
	})
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "1.2.3", Version{1, 2, 3}.String())
	assert.Equal(t, "0.0.0", Version{}.String())
}

func TestBump(t *testing.T) {
	tests := []struct {
		name string
		in   Version
		kind BumpKind
		want Version
	}{
		{"patch increments last component", Version{1, 2, 3}, BumpPatch, Version{1, 2, 4}},
		{"minor resets patch", Version{1, 2, 3}, BumpMinor, Version{1, 3, 0}},
		{"major resets minor and patch", Version{1, 2, 3}, BumpMajor, Version{2, 0, 0}},
		{"minor carries past nine", Version{2, 9, 9}, BumpMinor, Version{2, 10, 0}},
		{"patch from zero", Version{0, 0, 0}, BumpPatch, Version{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Bump(tt.kind))
		})
	}
}

func TestBumpComposition(t *testing.T) {
	// Two consecutive patch bumps never skip a number.
	v := Version{1, 2, 3}
	v = v.Bump(BumpPatch)
	v = v.Bump(BumpPatch)
	assert.Equal(t, Version{1, 2, 5}, v)
}

func TestParseBumpKind(t *testing.T) {
	t.Run("empty defaults to patch", func(t *testing.T) {
		kind, err := ParseBumpKind("")
		require.NoError(t, err)
		assert.Equal(t, BumpPatch, kind)
	})

	t.Run("recognized kinds", func(t *testing.T) {
		for _, s := range []string{"patch", "minor", "major"} {
			kind, err := ParseBumpKind(s)
			require.NoError(t, err)
			assert.Equal(t, BumpKind(s), kind)
		}
	})

	t.Run("unrecognized kind", func(t *testing.T) {
		_, err := ParseBumpKind("revision")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidBumpKind)
		assert.Contains(t, err.Error(), "revision")
	})
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, Compare(Version{1, 2, 3}, Version{1, 2, 3}))
	assert.Equal(t, -1, Compare(Version{1, 2, 3}, Version{1, 2, 4}))
	assert.Equal(t, 1, Compare(Version{2, 0, 0}, Version{1, 9, 9}))
	// Numeric ordering, not lexicographic.
	assert.Equal(t, 1, Compare(Version{2, 10, 0}, Version{2, 9, 9}))
}
