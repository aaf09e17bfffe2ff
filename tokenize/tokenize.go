//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package tokenize defines the tokenizer and stemmer capabilities used by
// ROUGE scoring and provides the built-in implementations for
// space-delimited scripts.
package tokenize

import (
	"strings"
	"unicode"
)

// Tokenizer turns text into an ordered token sequence. Implementations
// must be pure and safe for concurrent use; the scorer may call them from
// multiple goroutines during multi-reference scoring.
type Tokenizer interface {
	// Tokenize splits text into tokens.
	Tokenize(text string) ([]string, error)
}

// Stemmer reduces a single token to its stem.
type Stemmer interface {
	// Stem returns the stem of token.
	Stem(token string) (string, error)
}

// TokenizerFunc adapts a plain function to the Tokenizer interface.
type TokenizerFunc func(text string) ([]string, error)

// Tokenize calls f.
func (f TokenizerFunc) Tokenize(text string) ([]string, error) {
	return f(text)
}

// StemmerFunc adapts a plain function to the Stemmer interface.
type StemmerFunc func(token string) (string, error)

// Stem calls f.
func (f StemmerFunc) Stem(token string) (string, error) {
	return f(token)
}

// Whitespace is the default tokenizer for space-delimited scripts. It
// normalizes punctuation away, lowercases, and splits on whitespace.
// Han ideographs are padded into single-rune tokens first so unsegmented
// Chinese text degrades to character-level comparison instead of turning
// a whole clause into one token.
type Whitespace struct{}

// NewWhitespace returns the default whitespace tokenizer.
func NewWhitespace() Whitespace {
	return Whitespace{}
}

// Tokenize splits text into lowercase tokens on whitespace boundaries.
func (Whitespace) Tokenize(text string) ([]string, error) {
	text = strings.ToLower(Normalize(text))
	return strings.Fields(padIdeographs(text)), nil
}

// padIdeographs surrounds every Han rune with spaces.
func padIdeographs(text string) string {
	if !strings.ContainsFunc(text, isIdeograph) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + len(text)/2)
	for _, r := range text {
		if isIdeograph(r) {
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isIdeograph reports whether r is a Han ideograph.
func isIdeograph(r rune) bool {
	return unicode.Is(unicode.Han, r)
}
