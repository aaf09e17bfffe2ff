//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"strconv"
	"strings"
)

const (
	// TypeRougeL identifies longest-common-subsequence scoring.
	TypeRougeL = "rougeL"
	// TypeRougeLsum identifies summary-level union-LCS scoring.
	TypeRougeLsum = "rougeLsum"
	// typePrefix starts every valid ROUGE type identifier.
	typePrefix = "rouge"
)

// TypeRougeN returns the identifier for n-gram scoring with the given n,
// such as "rouge1" or "rouge2".
func TypeRougeN(n int) string {
	return typePrefix + strconv.Itoa(n)
}

// validateRougeType checks a ROUGE type identifier such as rouge1,
// rougeL, or rougeLsum.
func validateRougeType(rougeType string) error {
	if rougeType == TypeRougeL || rougeType == TypeRougeLsum {
		return nil
	}
	_, err := parseRougeN(rougeType)
	return err
}

// parseRougeN parses a ROUGE-N type identifier and returns the N value.
func parseRougeN(rougeType string) (int, error) {
	if !strings.HasPrefix(rougeType, typePrefix) {
		return 0, newConfigErrorf("invalid rouge type: %s", rougeType)
	}
	nStr := strings.TrimPrefix(rougeType, typePrefix)
	if nStr == "" {
		return 0, newConfigErrorf("invalid rouge type: %s", rougeType)
	}
	n, err := strconv.Atoi(nStr)
	if err != nil || n <= 0 {
		return 0, newConfigErrorf("invalid rouge type: %s", rougeType)
	}
	return n, nil
}
