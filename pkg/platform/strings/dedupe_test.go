package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrimUpper(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "uppercases and dedupes",
			input:    []string{"Abna", "abna", "ABNA"},
			expected: []string{"ABNA"},
		},
		{
			name:     "trims whitespace",
			input:    []string{"  ingb  ", "rabo "},
			expected: []string{"INGB", "RABO"},
		},
		{
			name:     "drops empty entries",
			input:    []string{"abna", "", "  ", "ingb"},
			expected: []string{"ABNA", "INGB"},
		},
		{
			name:     "preserves first-occurrence order",
			input:    []string{"rabo", "abna", "RABO", "ingb", "Abna"},
			expected: []string{"RABO", "ABNA", "INGB"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrimUpper(tt.input))
		})
	}
}
