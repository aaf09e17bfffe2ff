//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package tokenize

import (
	"fmt"

	"github.com/kljensen/snowball"
)

// Snowball stems tokens with the Snowball algorithm for one of the
// languages the snowball package ships: english, french, hungarian,
// norwegian, russian, spanish, and swedish.
type Snowball struct {
	language string
}

// NewSnowball returns a stemmer for the given snowball language name.
// The language is validated on first Stem call, not here.
func NewSnowball(language string) Snowball {
	return Snowball{language: language}
}

// Stem returns the stem of token. Stop words are stemmed like any other
// token; ROUGE compares full token sequences and must not drop them.
func (s Snowball) Stem(token string) (string, error) {
	stemmed, err := snowball.Stem(token, s.language, true)
	if err != nil {
		return "", fmt.Errorf("snowball %s: %w", s.language, err)
	}
	return stemmed, nil
}
