//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package tokenize

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizer composes text to NFC and replaces every punctuation rune
// (Unicode general category P*) with a space, so punctuation acts as a
// token boundary for the downstream whitespace split. Letters, digits,
// symbols, and whitespace of all scripts pass through unchanged. The
// Unicode tables are the ones pinned by the golang.org/x/text version in
// go.mod.
var normalizer = transform.Chain(norm.NFC, runes.Map(func(r rune) rune {
	if unicode.IsPunct(r) {
		return ' '
	}
	return r
}))

// Normalize strips punctuation from text as described on normalizer.
// It is idempotent: NFC composition and the punctuation mapping both
// leave already-normalized text unchanged.
func Normalize(text string) string {
	out, _, err := transform.String(normalizer, text)
	if err != nil {
		// transform.String only fails on malformed input the NFC
		// transformer refuses; scoring such text as-is beats failing.
		return text
	}
	return out
}
