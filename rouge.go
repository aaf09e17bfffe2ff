//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package rouge computes ROUGE text similarity scores between a
// prediction and one or more reference texts: rouge1..rougeN via clipped
// n-gram overlap, rougeL via longest common subsequence, and rougeLsum
// via union-LCS over sentences. Tokenization and stemming are pluggable
// capabilities so scripts without whitespace word boundaries can supply
// dictionary segmentation.
//
// The built-in tokenizers lowercase their input, matching the reference
// ROUGE implementation; supply a custom tokenizer for case-sensitive
// comparison.
package rouge

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"

	"trpc.group/trpc-go/trpc-rouge-go/internal/lcs"
	"trpc.group/trpc-go/trpc-rouge-go/internal/ngram"
	"trpc.group/trpc-go/trpc-rouge-go/internal/sentence"
	"trpc.group/trpc-go/trpc-rouge-go/lang"
	"trpc.group/trpc-go/trpc-rouge-go/log"
	"trpc.group/trpc-go/trpc-rouge-go/tokenize"
)

// defaultMinStemLength is the rune count a token must exceed before the
// stemmer runs, preserving ROUGE's historical behavior of leaving short
// tokens alone.
const defaultMinStemLength = 3

// Scorer computes a fixed set of ROUGE metrics. Construct it once with
// New and reuse it across documents; dictionary loading and validation
// happen at construction. A Scorer holds no mutable state, so concurrent
// Score calls are safe provided any caller-supplied tokenizer and
// stemmer are too.
type Scorer struct {
	rougeTypes     []string
	beta           float64
	splitSummaries bool
	minStemLength  int
	concurrency    int
	tokenizer      tokenize.Tokenizer
	// fallback recovers tokens when a language-keyed tokenizer returns
	// nothing for non-empty text; nil when tokenizer is already the
	// whitespace default or caller-supplied.
	fallback tokenize.Tokenizer
	stemmer  tokenize.Stemmer
}

// New validates the configuration and resolves tokenizer and stemmer
// capabilities. Every configuration problem is reported here, wrapped in
// ConfigError values, so Score never fails on configuration. Invalid
// ROUGE types are aggregated rather than reported one at a time.
func New(opt ...Option) (*Scorer, error) {
	opts := newOptions(opt...)
	if len(opts.rougeTypes) == 0 {
		return nil, newConfigErrorf("no rouge types configured")
	}
	var merr *multierror.Error
	for _, rougeType := range opts.rougeTypes {
		if err := validateRougeType(rougeType); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	if opts.beta <= 0 {
		return nil, newConfigErrorf("beta must be positive, got %v", opts.beta)
	}
	if opts.minStemLength < 0 {
		return nil, newConfigErrorf("min stem length must not be negative, got %d", opts.minStemLength)
	}

	s := &Scorer{
		rougeTypes:     append([]string(nil), opts.rougeTypes...),
		beta:           opts.beta,
		splitSummaries: opts.splitSummaries,
		minStemLength:  opts.minStemLength,
		concurrency:    opts.concurrency,
	}
	if err := s.resolveCapabilities(opts); err != nil {
		return nil, err
	}
	return s, nil
}

// resolveCapabilities picks the tokenizer and stemmer from the explicit
// options, the language registry, or the built-in defaults, in that
// order of precedence. The two capabilities are independent: a custom
// tokenizer keeps the language-resolved stemmer.
func (s *Scorer) resolveCapabilities(opts *options) error {
	s.tokenizer = opts.tokenizer
	s.stemmer = opts.stemmer
	registry := func() *lang.Registry {
		if opts.registry != nil {
			return opts.registry
		}
		return lang.NewRegistry()
	}
	if s.tokenizer == nil {
		if opts.language == "" {
			s.tokenizer = tokenize.NewWhitespace()
		} else {
			tok, stem, err := registry().Resolve(opts.language)
			if err != nil {
				return newConfigErrorf("%v", err)
			}
			s.tokenizer = tok
			if s.stemmer == nil {
				s.stemmer = stem
			}
			if _, isDefault := tok.(tokenize.Whitespace); !isDefault {
				s.fallback = tokenize.NewWhitespace()
			}
		}
	} else if s.stemmer == nil && opts.stemming && opts.language != "" {
		// The language still selects the stemmer; an unknown language is
		// not a configuration error here since the custom tokenizer does
		// not need it, so resolution failures fall through to the
		// no-stemmer warning below.
		if _, stem, err := registry().Resolve(opts.language); err == nil {
			s.stemmer = stem
		}
	}
	if !opts.stemming {
		s.stemmer = nil
		return nil
	}
	if s.stemmer == nil {
		if opts.language != "" {
			log.Warnf("rouge: no stemmer registered for language %q, stemming disabled", opts.language)
			return nil
		}
		s.stemmer = tokenize.NewSnowball(lang.DefaultStemmerLanguage)
	}
	return nil
}

// Score computes the configured ROUGE types between one reference target
// and a prediction. The result maps each ROUGE type to its Score and is
// freshly allocated per call. Empty inputs score zero rather than
// failing; tokenizer and stemmer failures propagate unchanged.
func (s *Scorer) Score(ctx context.Context, target, prediction string) (map[string]Score, error) {
	if ctx == nil {
		return nil, errors.New("rouge: context is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var targetTokens, predTokens []string
	if s.needsPlainTokens() {
		var err error
		if targetTokens, err = s.tokenizeText(target); err != nil {
			return nil, err
		}
		if predTokens, err = s.tokenizeText(prediction); err != nil {
			return nil, err
		}
	}

	result := make(map[string]Score, len(s.rougeTypes))
	for _, rougeType := range s.rougeTypes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch rougeType {
		case TypeRougeL:
			result[rougeType] = s.scoreLCS(targetTokens, predTokens)
		case TypeRougeLsum:
			score, err := s.scoreSummary(target, prediction)
			if err != nil {
				return nil, err
			}
			result[rougeType] = score
		default:
			n, err := parseRougeN(rougeType)
			if err != nil {
				return nil, err
			}
			result[rougeType] = s.scoreNGrams(targetTokens, predTokens, n)
		}
	}
	return result, nil
}

// needsPlainTokens reports whether any configured type scores whole-text
// token sequences; rougeLsum tokenizes per sentence instead.
func (s *Scorer) needsPlainTokens() bool {
	for _, rougeType := range s.rougeTypes {
		if rougeType != TypeRougeLsum {
			return true
		}
	}
	return false
}

// tokenizeText runs the tokenizer, the empty-result fallback, and the
// stemming pass over one text.
func (s *Scorer) tokenizeText(text string) ([]string, error) {
	tokens, err := s.tokenizer.Tokenize(text)
	if err != nil {
		return nil, fmt.Errorf("rouge: tokenize: %w", err)
	}
	if len(tokens) == 0 && s.fallback != nil && strings.TrimSpace(text) != "" {
		log.Warnf("rouge: language tokenizer produced no tokens, falling back to whitespace tokenization")
		if tokens, err = s.fallback.Tokenize(text); err != nil {
			return nil, fmt.Errorf("rouge: tokenize: %w", err)
		}
	}
	if s.stemmer == nil {
		return tokens, nil
	}
	stemmed := make([]string, len(tokens))
	for i, token := range tokens {
		if utf8.RuneCountInString(token) <= s.minStemLength {
			stemmed[i] = token
			continue
		}
		stem, err := s.stemmer.Stem(token)
		if err != nil {
			return nil, fmt.Errorf("rouge: stem %q: %w", token, err)
		}
		stemmed[i] = stem
	}
	return stemmed, nil
}

// newScore assembles a Score from precision and recall using the
// configured beta.
func (s *Scorer) newScore(precision, recall float64) Score {
	return Score{Precision: precision, Recall: recall, FMeasure: fMeasure(precision, recall, s.beta)}
}

// scoreNGrams computes ROUGE-N for tokenized inputs using clipped
// n-gram counts.
func (s *Scorer) scoreNGrams(targetTokens, predTokens []string, n int) Score {
	if len(targetTokens) == 0 || len(predTokens) == 0 {
		return Score{}
	}
	targetNGrams := ngram.Count(targetTokens, n)
	predNGrams := ngram.Count(predTokens, n)
	match := ngram.Overlap(targetNGrams, predNGrams)
	precision := float64(match) / float64(max(ngram.Total(predNGrams), 1))
	recall := float64(match) / float64(max(ngram.Total(targetNGrams), 1))
	return s.newScore(precision, recall)
}

// scoreLCS computes ROUGE-L from the LCS length of the token sequences.
func (s *Scorer) scoreLCS(targetTokens, predTokens []string) Score {
	if len(targetTokens) == 0 || len(predTokens) == 0 {
		return Score{}
	}
	length := lcs.Length(targetTokens, predTokens)
	precision := float64(length) / float64(len(predTokens))
	recall := float64(length) / float64(len(targetTokens))
	return s.newScore(precision, recall)
}

// scoreSummary computes rougeLsum: the texts are split into sentences,
// tokenized per sentence, and matched with union-LCS.
func (s *Scorer) scoreSummary(target, prediction string) (Score, error) {
	targetSents, err := s.sentences(target)
	if err != nil {
		return Score{}, err
	}
	predSents, err := s.sentences(prediction)
	if err != nil {
		return Score{}, err
	}

	targetTokensList := make([][]string, 0, len(targetSents))
	for _, sent := range targetSents {
		tokens, err := s.tokenizeText(sent)
		if err != nil {
			return Score{}, err
		}
		targetTokensList = append(targetTokensList, tokens)
	}
	predTokensList := make([][]string, 0, len(predSents))
	for _, sent := range predSents {
		tokens, err := s.tokenizeText(sent)
		if err != nil {
			return Score{}, err
		}
		predTokensList = append(predTokensList, tokens)
	}
	return s.summaryLevelLCS(targetTokensList, predTokensList), nil
}

// sentences returns the non-empty sentences of text, splitting on
// newlines by default or with Punkt sentence segmentation when
// split-summaries is configured.
func (s *Scorer) sentences(text string) ([]string, error) {
	var sents []string
	if s.splitSummaries {
		list, err := sentence.Split(text)
		if err != nil {
			return nil, fmt.Errorf("rouge: split sentences: %w", err)
		}
		sents = list
	} else {
		sents = strings.Split(text, "\n")
	}
	out := make([]string, 0, len(sents))
	for _, sent := range sents {
		if len(sent) == 0 {
			continue
		}
		out = append(out, sent)
	}
	return out, nil
}

// summaryLevelLCS scores tokenized sentence lists with union-LCS. A
// prediction token position counts once even when it matches several
// reference sentences: matched reference indices are unioned per
// reference sentence, then clipped against per-token counts on both
// sides, the double-counting rule of ROUGE 1.5.5.
func (s *Scorer) summaryLevelLCS(refSents, predSents [][]string) Score {
	if len(refSents) == 0 || len(predSents) == 0 {
		return Score{}
	}

	refTotal := 0
	for _, sent := range refSents {
		refTotal += len(sent)
	}
	predTotal := 0
	for _, sent := range predSents {
		predTotal += len(sent)
	}
	if refTotal == 0 || predTotal == 0 {
		return Score{}
	}

	refCnts := make(map[string]int)
	predCnts := make(map[string]int)
	for _, sent := range refSents {
		for _, token := range sent {
			refCnts[token]++
		}
	}
	for _, sent := range predSents {
		for _, token := range sent {
			predCnts[token]++
		}
	}

	hits := 0
	for _, ref := range refSents {
		for _, idx := range lcs.Union(ref, predSents) {
			token := ref[idx]
			if predCnts[token] <= 0 || refCnts[token] <= 0 {
				continue
			}
			hits++
			predCnts[token]--
			refCnts[token]--
		}
	}

	precision := float64(hits) / float64(predTotal)
	recall := float64(hits) / float64(refTotal)
	return s.newScore(precision, recall)
}
