//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package cjk tokenizes Chinese and Japanese text with gse dictionary
// segmentation. It lives in its own package so that callers scoring only
// space-delimited languages never link the embedded dictionaries.
package cjk

import (
	"fmt"
	"strings"

	"github.com/go-ego/gse"

	"trpc.group/trpc-go/trpc-rouge-go/tokenize"
)

// Segmenter splits text into dictionary words. Loading the embedded
// dictionaries is expensive; build a Segmenter once and reuse it. A
// built Segmenter is read-only and safe for concurrent use.
type Segmenter struct {
	seg gse.Segmenter
}

// New loads the embedded dictionaries named by dicts, such as "zh" or
// "ja", in order.
func New(dicts ...string) (*Segmenter, error) {
	s := &Segmenter{}
	// Keep latin words and digit runs as single tokens.
	s.seg.AlphaNum = true
	for _, dict := range dicts {
		if err := s.seg.LoadDictEmbed(dict); err != nil {
			return nil, fmt.Errorf("load %s dictionary: %w", dict, err)
		}
	}
	return s, nil
}

// Tokenize normalizes, lowercases, and segments text into dictionary
// words, dropping whitespace-only segments.
func (s *Segmenter) Tokenize(text string) ([]string, error) {
	text = strings.ToLower(tokenize.Normalize(text))
	raw := s.seg.Slice(text)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
