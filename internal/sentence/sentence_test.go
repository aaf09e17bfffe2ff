//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package sentence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplit_Basic verifies sentence boundaries on common punctuation.
func TestSplit_Basic(t *testing.T) {
	cases := []struct {
		input    string
		expected []string
	}{
		{
			input:    "First sentence. Second sentence.",
			expected: []string{"First sentence.", "Second sentence."},
		},
		{
			input:    "This! That",
			expected: []string{"This!", "That"},
		},
		{
			input:    "Hello.\tThere",
			expected: []string{"Hello.", "There"},
		},
		{
			input:    "One sentence without terminator",
			expected: []string{"One sentence without terminator"},
		},
	}
	for _, tc := range cases {
		actual, err := Split(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, actual, "input: %q", tc.input)
	}
}

// TestSplit_Empty verifies that empty and whitespace-only input yields no sentences.
func TestSplit_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n"} {
		actual, err := Split(input)
		require.NoError(t, err)
		assert.Empty(t, actual)
	}
}

// TestSplit_Abbreviation verifies that the Punkt model keeps common abbreviations inside a sentence.
func TestSplit_Abbreviation(t *testing.T) {
	actual, err := Split("Dr. Smith arrived. The meeting began.")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dr. Smith arrived.", "The meeting began."}, actual)
}
