package cocomo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClass(t *testing.T) {
	tests := []struct {
		input    string
		expected ProjectClass
		wantErr  bool
	}{
		{input: "", expected: ClassOrganic},
		{input: "O", expected: ClassOrganic},
		{input: "S", expected: ClassSemiDetached},
		{input: "E", expected: ClassEmbedded},
		{input: "organic", expected: ClassOrganic},
		{input: "semi-detached", expected: ClassSemiDetached},
		{input: "embedded", expected: ClassEmbedded},
		{input: "X", wantErr: true},
		{input: "o", wantErr: true},
		{input: "Embedded", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			class, err := ParseClass(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, class)
		})
	}
}

func TestParseRating(t *testing.T) {
	for _, r := range Ratings() {
		got, ok := ParseRating(string(r))
		assert.True(t, ok)
		assert.Equal(t, r, got)

		got, ok = ParseRating(r.Abbreviation())
		assert.True(t, ok)
		assert.Equal(t, r, got)
	}

	for _, s := range []string{"", "vl", "Very-Low", "XL", "nominal "} {
		_, ok := ParseRating(s)
		assert.False(t, ok, s)
	}
}

func TestParseSLOC(t *testing.T) {
	sloc, err := ParseSLOC("30000")
	require.NoError(t, err)
	assert.Equal(t, 30000, sloc)

	sloc, err = ParseSLOC(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, sloc)

	for _, s := range []string{"abc", "12.5", "", "1e3", "30k"} {
		_, err := ParseSLOC(s)
		assert.ErrorIs(t, err, ErrInvalidArgument, s)
	}
}
