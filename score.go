//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

// Score holds ROUGE precision, recall and F-measure.
type Score struct {
	// Precision is the fraction of predicted units that match the reference in range [0, 1].
	Precision float64
	// Recall is the fraction of reference units that are matched by the prediction in range [0, 1].
	Recall float64
	// FMeasure combines precision and recall in range [0, 1].
	FMeasure float64
}

// fMeasure computes the beta-weighted harmonic mean of precision and
// recall: (1+beta^2)*P*R / (R + beta^2*P). beta == 1 gives the standard
// F1. Zero precision and recall yield zero rather than dividing by zero.
func fMeasure(precision, recall, beta float64) float64 {
	denom := recall + beta*beta*precision
	if denom <= 0 {
		return 0
	}
	return (1 + beta*beta) * precision * recall / denom
}
