package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases latin",
			input:    "Hemoglobin",
			expected: "hemoglobin",
		},
		{
			name:     "folds cyrillic",
			input:    "Гемоглобин",
			expected: "гемоглобин",
		},
		{
			name:     "collapses internal whitespace",
			input:    "25-OH   Vitamin \t D",
			expected: "25-oh vitamin d",
		},
		{
			name:     "keeps internal hyphen",
			input:    "25-OH Vitamin D",
			expected: "25-oh vitamin d",
		},
		{
			name:     "strips leading and trailing punctuation",
			input:    "  *Hemoglobin:* ",
			expected: "hemoglobin",
		},
		{
			name:     "nfkc compatibility forms",
			input:    "Ｈｅｍｏｇｌｏｂｉｎ", // full-width
			expected: "hemoglobin",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "punctuation only",
			input:    "***",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Key(tt.input))
		})
	}
}

func TestKeyDeterministic(t *testing.T) {
	// Same logical string in different unicode presentations keys identically.
	assert.Equal(t, Key("ＨＧＢ"), Key("hgb"))
	assert.Equal(t, Key("Витамин D"), Key("витамин d"))
}
