//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package ngram counts contiguous token n-grams for ROUGE-N scoring.
package ngram

import "strings"

// separator joins the tokens of an n-gram into a map key. A NUL byte cannot
// appear inside a token produced by any tokenizer in this module, so joined
// keys are unambiguous.
const separator = "\x00"

// Count builds a multiset of overlapping n-grams from tokens. It returns an
// empty map when n is larger than the token count or not positive.
func Count(tokens []string, n int) map[string]int {
	if n <= 0 || len(tokens) < n {
		return map[string]int{}
	}
	counts := make(map[string]int, len(tokens)-n+1)
	for i := 0; i <= len(tokens)-n; i++ {
		counts[strings.Join(tokens[i:i+n], separator)]++
	}
	return counts
}

// Total returns the number of n-grams in the multiset, duplicates included.
func Total(counts map[string]int) int {
	total := 0
	for _, cnt := range counts {
		total += cnt
	}
	return total
}

// Overlap returns the clipped intersection size of two n-gram multisets:
// each shared n-gram contributes the smaller of its two counts.
func Overlap(target, prediction map[string]int) int {
	overlap := 0
	for key, cnt := range target {
		predCnt, ok := prediction[key]
		if !ok {
			continue
		}
		if predCnt < cnt {
			overlap += predCnt
		} else {
			overlap += cnt
		}
	}
	return overlap
}
