//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package sentence splits English text into sentences for summary-level
// ROUGE scoring. It uses the Punkt model shipped with the sentences
// package, which mirrors NLTK's sent_tokenize closely enough for scoring.
package sentence

import (
	"fmt"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
)

var (
	// tokenizerOnce guards the one-time Punkt model load.
	tokenizerOnce sync.Once
	// tokenizer is the initialized English sentence tokenizer.
	tokenizer *sentences.DefaultSentenceTokenizer
	// tokenizerErr caches any initialization failure.
	tokenizerErr error
)

// Split returns the non-empty, whitespace-trimmed sentences of text. The
// Punkt training data is loaded on first use and reused afterwards.
func Split(text string) ([]string, error) {
	tokenizerOnce.Do(func() {
		b, err := sentencesdata.Asset("data/english.json")
		if err != nil {
			tokenizerErr = fmt.Errorf("load english punkt data: %w", err)
			return
		}
		training, err := sentences.LoadTraining(b)
		if err != nil {
			tokenizerErr = fmt.Errorf("parse english punkt data: %w", err)
			return
		}
		tokenizer = sentences.NewSentenceTokenizer(training)
	})
	if tokenizerErr != nil {
		return nil, tokenizerErr
	}

	raw := tokenizer.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, sent := range raw {
		s := strings.TrimSpace(sent.Text)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
