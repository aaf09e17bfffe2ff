//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package lcs computes longest common subsequences over token sequences.
package lcs

import "sort"

// Length returns the length of the longest common subsequence of a and b.
// It keeps only two rows of the dynamic programming table, so memory is
// proportional to len(b) rather than len(a)*len(b).
func Length(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		curr[0] = 0
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
				continue
			}
			if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// Indices returns the ref-side index sequence of one longest common
// subsequence between ref and can, in increasing order. It needs the full
// table for backtracking, so memory is proportional to len(ref)*len(can).
func Indices(ref, can []string) []int {
	return backtrack(buildTable(ref, can), ref, can)
}

// Union returns the sorted union of ref-side LCS indices between ref and
// every candidate sentence. A ref position counts once no matter how many
// candidates it matches.
func Union(ref []string, candidates [][]string) []int {
	seen := make(map[int]struct{})
	for _, can := range candidates {
		for _, idx := range Indices(ref, can) {
			seen[idx] = struct{}{}
		}
	}
	union := make([]int, 0, len(seen))
	for idx := range seen {
		union = append(union, idx)
	}
	sort.Ints(union)
	return union
}

// buildTable fills the (len(ref)+1)x(len(can)+1) dynamic programming table.
func buildTable(ref, can []string) [][]int {
	table := make([][]int, len(ref)+1)
	for i := range table {
		table[i] = make([]int, len(can)+1)
	}
	for i := 1; i <= len(ref); i++ {
		for j := 1; j <= len(can); j++ {
			if ref[i-1] == can[j-1] {
				table[i][j] = table[i-1][j-1] + 1
				continue
			}
			if table[i-1][j] >= table[i][j-1] {
				table[i][j] = table[i-1][j]
			} else {
				table[i][j] = table[i][j-1]
			}
		}
	}
	return table
}

// backtrack walks the table from the bottom-right corner and collects the
// ref indices of one LCS without recursion.
func backtrack(table [][]int, ref, can []string) []int {
	i := len(ref)
	j := len(can)
	indices := make([]int, 0, table[i][j])
	for i > 0 && j > 0 {
		switch {
		case ref[i-1] == can[j-1]:
			indices = append(indices, i-1)
			i--
			j--
		case table[i][j-1] > table[i-1][j]:
			j--
		default:
			i--
		}
	}
	for left, right := 0, len(indices)-1; left < right; left, right = left+1, right-1 {
		indices[left], indices[right] = indices[right], indices[left]
	}
	return indices
}
