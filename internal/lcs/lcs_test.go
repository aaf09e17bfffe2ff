//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package lcs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLength_Basic verifies LCS lengths against hand-computed tables.
func TestLength_Basic(t *testing.T) {
	cases := []struct {
		a        string
		b        string
		expected int
	}{
		{"testing one two", "testing two", 2},
		{"a b c d", "a b c d", 4},
		{"a b c d", "d c b a", 1},
		{"a x b y c", "a b c", 3},
		{"a", "b", 0},
		{"", "a b", 0},
		// Hand-computed table for the classic fox/dog pair.
		{"the quick brown fox jumps over the lazy dog", "the quick brown dog jumps on the log", 5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, Length(strings.Fields(tc.a), strings.Fields(tc.b)), "LCS(%q, %q)", tc.a, tc.b)
	}
}

// TestLength_Symmetry verifies LCS(a, b) == LCS(b, a).
func TestLength_Symmetry(t *testing.T) {
	sequences := [][]string{
		strings.Fields("a b c d e"),
		strings.Fields("c a b e"),
		strings.Fields("x y z"),
		nil,
	}
	for _, a := range sequences {
		for _, b := range sequences {
			assert.Equal(t, Length(a, b), Length(b, a))
		}
	}
}

// TestLength_Identity verifies LCS(a, a) == len(a).
func TestLength_Identity(t *testing.T) {
	a := strings.Fields("w1 w2 w3 w2 w1")
	assert.Equal(t, len(a), Length(a, a))
}

// TestLength_Bounds verifies 0 <= LCS(a, b) <= min(len(a), len(b)).
func TestLength_Bounds(t *testing.T) {
	a := strings.Fields("a b c d e f")
	b := strings.Fields("b d f")
	length := Length(a, b)
	assert.GreaterOrEqual(t, length, 0)
	assert.LessOrEqual(t, length, len(b))
}

// TestIndices_Increasing verifies backtracking returns increasing ref indices of a real LCS.
func TestIndices_Increasing(t *testing.T) {
	ref := strings.Fields("w1 w2 w3 w4 w5")
	can := strings.Fields("w1 w3 w8 w9 w5")
	indices := Indices(ref, can)
	assert.Equal(t, []int{0, 2, 4}, indices)
	assert.Len(t, indices, Length(ref, can))
}

// TestIndices_Empty verifies empty inputs produce no indices.
func TestIndices_Empty(t *testing.T) {
	assert.Empty(t, Indices(nil, strings.Fields("a")))
	assert.Empty(t, Indices(strings.Fields("a"), nil))
}

// TestUnion_AcrossCandidates verifies that matched ref positions are unioned without double counting.
func TestUnion_AcrossCandidates(t *testing.T) {
	ref := strings.Fields("w1 w2 w3 w4 w5")
	candidates := [][]string{
		strings.Fields("w1 w2 w6 w7 w8"),
		strings.Fields("w1 w3 w8 w9 w5"),
	}
	// First candidate matches ref[0:2], second matches ref indices 0, 2, 4;
	// index 0 appears once in the union.
	assert.Equal(t, []int{0, 1, 2, 4}, Union(ref, candidates))
}

// TestUnion_NoCandidates verifies an empty candidate list yields an empty union.
func TestUnion_NoCandidates(t *testing.T) {
	assert.Empty(t, Union(strings.Fields("a b"), nil))
}
