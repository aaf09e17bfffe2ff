//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package lang maps language identifiers to default tokenizer and
// stemmer capabilities. Registries are plain values: build one per
// scorer or per test, register what you need, and throw it away. There
// is no process-wide mutable language table.
package lang

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"trpc.group/trpc-go/trpc-rouge-go/tokenize"
	"trpc.group/trpc-go/trpc-rouge-go/tokenize/cjk"
)

// DefaultStemmerLanguage is the stemmer used when stemming is requested
// without a language, preserving the historical ROUGE default of Porter
// stemming for English.
const DefaultStemmerLanguage = "english"

// ErrUnknownLanguage reports a language identifier with no registry entry.
var ErrUnknownLanguage = errors.New("unknown language")

// TokenizerConstructor builds a tokenizer. Construction may be expensive
// (dictionary loading); the registry caches the result per language.
type TokenizerConstructor func() (tokenize.Tokenizer, error)

// StemmerConstructor builds a stemmer.
type StemmerConstructor func() (tokenize.Stemmer, error)

// entry holds the constructors for one language. A nil tokenizer
// constructor means the whitespace default; a nil stemmer constructor
// means the language has no stemmer.
type entry struct {
	tokenizer TokenizerConstructor
	stemmer   StemmerConstructor
}

// Registry maps language identifiers to capability constructors.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
	aliases map[string]string
	// built caches constructed tokenizers so repeated Resolve calls for
	// dictionary-backed languages pay the load cost once per registry.
	built map[string]tokenize.Tokenizer
}

// NewRegistry returns a registry preloaded with the built-in languages:
// snowball stemmers where snowball covers the language, gse dictionary
// segmentation for chinese and japanese, and the whitespace tokenizer
// everywhere else.
func NewRegistry() *Registry {
	r := &Registry{
		entries: make(map[string]entry, len(defaultLanguages)+len(snowballLanguages)+2),
		aliases: make(map[string]string, len(defaultAliases)),
		built:   make(map[string]tokenize.Tokenizer),
	}
	for _, language := range defaultLanguages {
		r.entries[language] = entry{}
	}
	for _, language := range snowballLanguages {
		language := language
		r.entries[language] = entry{
			stemmer: func() (tokenize.Stemmer, error) {
				return tokenize.NewSnowball(language), nil
			},
		}
	}
	r.entries["chinese"] = entry{tokenizer: segmenterConstructor("zh")}
	r.entries["japanese"] = entry{tokenizer: segmenterConstructor("ja")}
	for alias, language := range defaultAliases {
		r.aliases[alias] = language
	}
	return r
}

// Register maps a language identifier to tokenizer and stemmer
// constructors, replacing any previous entry. Either constructor may be
// nil: a nil tokenizer falls back to whitespace splitting, a nil stemmer
// disables stemming for the language.
func (r *Registry) Register(language string, tokenizer TokenizerConstructor, stemmer StemmerConstructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.built, strings.ToLower(language))
	r.entries[strings.ToLower(language)] = entry{tokenizer: tokenizer, stemmer: stemmer}
}

// RegisterAlias maps an alternate identifier to a canonical language.
func (r *Registry) RegisterAlias(alias, language string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[strings.ToLower(alias)] = strings.ToLower(language)
}

// Canonical lowercases the identifier and resolves aliases.
func (r *Registry) Canonical(language string) string {
	language = strings.ToLower(language)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if canonical, ok := r.aliases[language]; ok {
		return canonical
	}
	return language
}

// Resolve returns the tokenizer and stemmer for a language identifier.
// The stemmer is nil when the language has none registered. Unknown
// identifiers return an error wrapping ErrUnknownLanguage.
func (r *Registry) Resolve(language string) (tokenize.Tokenizer, tokenize.Stemmer, error) {
	canonical := r.Canonical(language)

	r.mu.RLock()
	e, ok := r.entries[canonical]
	cached := r.built[canonical]
	r.mu.RUnlock()
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}

	var tok tokenize.Tokenizer
	switch {
	case cached != nil:
		tok = cached
	case e.tokenizer == nil:
		tok = tokenize.NewWhitespace()
	default:
		built, err := e.tokenizer()
		if err != nil {
			return nil, nil, fmt.Errorf("build %s tokenizer: %w", canonical, err)
		}
		r.mu.Lock()
		r.built[canonical] = built
		r.mu.Unlock()
		tok = built
	}

	var stem tokenize.Stemmer
	if e.stemmer != nil {
		built, err := e.stemmer()
		if err != nil {
			return nil, nil, fmt.Errorf("build %s stemmer: %w", canonical, err)
		}
		stem = built
	}
	return tok, stem, nil
}

// segmenterConstructor builds a gse segmenter for one embedded dictionary.
func segmenterConstructor(dict string) TokenizerConstructor {
	return func() (tokenize.Tokenizer, error) {
		return cjk.New(dict)
	}
}

// snowballLanguages are the languages the snowball package can stem.
var snowballLanguages = []string{
	"english",
	"french",
	"hungarian",
	"norwegian",
	"russian",
	"spanish",
	"swedish",
}

// defaultLanguages are the remaining languages of the XL-Sum corpus,
// tokenized by whitespace with no stemmer.
var defaultLanguages = []string{
	"amharic",
	"arabic",
	"azerbaijani",
	"bengali",
	"burmese",
	"gujarati",
	"hausa",
	"hindi",
	"igbo",
	"indonesian",
	"kirundi",
	"korean",
	"kyrgyz",
	"marathi",
	"nepali",
	"oromo",
	"pashto",
	"persian",
	"pidgin",
	"portuguese",
	"punjabi",
	"scottish_gaelic",
	"serbian_cyrillic",
	"serbian_latin",
	"sinhala",
	"somali",
	"swahili",
	"tamil",
	"telugu",
	"thai",
	"tigrinya",
	"turkish",
	"ukrainian",
	"urdu",
	"uzbek",
	"vietnamese",
	"welsh",
	"yoruba",
}

// defaultAliases are alternate names accepted for built-in languages.
var defaultAliases = map[string]string{
	"bangla":              "bengali",
	"turkce":              "turkish",
	"chinese_simplified":  "chinese",
	"chinese_traditional": "chinese",
	"mundo":               "spanish",
}
