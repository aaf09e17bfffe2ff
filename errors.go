//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import "fmt"

// ConfigError reports a scorer configuration that can never produce
// scores: an invalid ROUGE type, an unknown language with no custom
// tokenizer, or an out-of-range parameter. It is only returned by New,
// never by Score or ScoreMulti.
type ConfigError struct {
	// Reason describes what is wrong with the configuration.
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "rouge: invalid configuration: " + e.Reason
}

// newConfigErrorf builds a ConfigError from a format string.
func newConfigErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
