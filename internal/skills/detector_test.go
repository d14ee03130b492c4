package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_SubstringMode(t *testing.T) {
	d := DefaultDetector()

	found := d.Detect("Experienced in JavaScript and React")

	// "java" is reported because it is a substring of "javascript"
	assert.Equal(t, []string{"java", "javascript", "react"}, found)
}

func TestDetect_WordMode(t *testing.T) {
	d := NewDetector(MatchWord)

	found := d.Detect("Experienced in JavaScript and React")

	assert.Equal(t, []string{"javascript", "react"}, found)
}

func TestDetect_SymbolTerms(t *testing.T) {
	for _, mode := range []MatchMode{MatchSubstring, MatchWord} {
		t.Run(string(mode), func(t *testing.T) {
			found := NewDetector(mode).Detect("c++ and c#")
			assert.Equal(t, []string{"c++", "c#"}, found)
		})
	}
}

func TestDetect_MultiWordTerm(t *testing.T) {
	found := DefaultDetector().Detect("Applied Machine Learning to logs")
	assert.Contains(t, found, "machine learning")
}

func TestDetect_EmptyText(t *testing.T) {
	found := DefaultDetector().Detect("   ")
	require.NotNil(t, found)
	assert.Empty(t, found)
}

func TestParseMatchMode(t *testing.T) {
	tests := []struct {
		in      string
		want    MatchMode
		wantErr bool
	}{
		{"", MatchSubstring, false},
		{"substring", MatchSubstring, false},
		{" WORD ", MatchWord, false},
		{"fuzzy", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMatchMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVocabulary_ReturnsCopy(t *testing.T) {
	v := Vocabulary()
	require.NotEmpty(t, v)
	v[0] = "mutated"
	assert.Equal(t, "python", Vocabulary()[0])
}

func TestContainsWord(t *testing.T) {
	assert.True(t, ContainsWord("b.s. in physics", "b.s."))
	assert.True(t, ContainsWord("ms, computer science", "ms"))
	assert.False(t, ContainsWord("systems", "ms"))
	assert.True(t, ContainsWord("java and javascript", "javascript"))
	assert.False(t, ContainsWord("javascript", "java"))
	assert.False(t, ContainsWord("", "java"))
}
