//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"trpc.group/trpc-go/trpc-rouge-go/lang"
	"trpc.group/trpc-go/trpc-rouge-go/tokenize"
)

// options holds internal configuration for ROUGE scoring.
type options struct {
	// rougeTypes holds the requested ROUGE types to compute.
	rougeTypes []string
	// language selects the default tokenizer and stemmer from the registry.
	language string
	// stemming enables per-token stemming after tokenization.
	stemming bool
	// splitSummaries enables sentence splitting for rougeLsum.
	splitSummaries bool
	// beta weights recall against precision in the F-measure.
	beta float64
	// minStemLength is the rune count a token must exceed to be stemmed.
	minStemLength int
	// concurrency bounds the goroutine pool used by ScoreMulti.
	concurrency int
	// tokenizer overrides any language-keyed tokenizer when provided.
	tokenizer tokenize.Tokenizer
	// stemmer overrides any language-keyed stemmer when provided.
	stemmer tokenize.Stemmer
	// registry overrides the built-in language registry when provided.
	registry *lang.Registry
}

// newOptions applies functional options to build a scoring configuration.
func newOptions(opt ...Option) *options {
	opts := &options{
		beta:          1,
		minStemLength: defaultMinStemLength,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures ROUGE scoring.
type Option func(*options)

// WithRougeTypes sets the ROUGE types to compute.
func WithRougeTypes(rougeTypes ...string) Option {
	return func(o *options) {
		o.rougeTypes = append([]string(nil), rougeTypes...)
	}
}

// WithLanguage selects the default tokenizer and stemmer for a language
// identifier. A custom tokenizer replaces only the tokenizer half; the
// language still selects the stemmer unless one is supplied too.
func WithLanguage(language string) Option {
	return func(o *options) {
		o.language = language
	}
}

// WithStemming enables or disables stemming of tokens after tokenization.
func WithStemming(stemming bool) Option {
	return func(o *options) {
		o.stemming = stemming
	}
}

// WithSplitSummaries splits summaries into sentences for rougeLsum
// instead of treating each line as a sentence.
func WithSplitSummaries(splitSummaries bool) Option {
	return func(o *options) {
		o.splitSummaries = splitSummaries
	}
}

// WithBeta sets the recall weight of the F-measure. The default of 1
// gives the standard harmonic mean.
func WithBeta(beta float64) Option {
	return func(o *options) {
		o.beta = beta
	}
}

// WithMinStemLength sets the rune count a token must exceed before the
// stemmer is applied. The default is 3.
func WithMinStemLength(minStemLength int) Option {
	return func(o *options) {
		o.minStemLength = minStemLength
	}
}

// WithConcurrency bounds the goroutine pool ScoreMulti uses to score
// references in parallel. Values below 2 keep scoring sequential.
func WithConcurrency(concurrency int) Option {
	return func(o *options) {
		o.concurrency = concurrency
	}
}

// WithTokenizer overrides the language-keyed tokenizer when provided.
// The tokenizer must be safe for concurrent use.
func WithTokenizer(tokenizer tokenize.Tokenizer) Option {
	return func(o *options) {
		o.tokenizer = tokenizer
	}
}

// WithStemmer overrides the language-keyed stemmer when provided. The
// stemmer must be safe for concurrent use. It only runs when stemming is
// enabled via WithStemming.
func WithStemmer(stemmer tokenize.Stemmer) Option {
	return func(o *options) {
		o.stemmer = stemmer
	}
}

// WithRegistry resolves language identifiers against a caller-supplied
// registry instead of a fresh default one.
func WithRegistry(registry *lang.Registry) Option {
	return func(o *options) {
		o.registry = registry
	}
}
