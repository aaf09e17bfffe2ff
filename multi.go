//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// ScoreMulti scores the prediction against every target independently
// and keeps, per ROUGE type, the Score with the highest F-measure.
// Earlier targets win ties. With WithConcurrency(n) for n > 1, targets
// are scored on a bounded goroutine pool; results are identical to the
// sequential path.
func (s *Scorer) ScoreMulti(ctx context.Context, targets []string, prediction string) (map[string]Score, error) {
	if len(targets) == 0 {
		return nil, errors.New("rouge: targets are empty")
	}

	var perTarget []map[string]Score
	var err error
	if s.concurrency > 1 && len(targets) > 1 {
		perTarget, err = s.scoreTargetsPooled(ctx, targets, prediction)
	} else {
		perTarget, err = s.scoreTargetsSequential(ctx, targets, prediction)
	}
	if err != nil {
		return nil, err
	}

	best := make(map[string]Score, len(s.rougeTypes))
	for i, scores := range perTarget {
		for rougeType, score := range scores {
			if i == 0 || score.FMeasure > best[rougeType].FMeasure {
				best[rougeType] = score
			}
		}
	}
	return best, nil
}

// scoreTargetsSequential scores each target in order on the calling
// goroutine.
func (s *Scorer) scoreTargetsSequential(ctx context.Context, targets []string, prediction string) ([]map[string]Score, error) {
	results := make([]map[string]Score, 0, len(targets))
	for _, target := range targets {
		scores, err := s.Score(ctx, target, prediction)
		if err != nil {
			return nil, err
		}
		results = append(results, scores)
	}
	return results, nil
}

// scoreTargetsPooled scores targets on a bounded ants pool. Results are
// collected positionally so aggregation order, and therefore
// tie-breaking, matches the sequential path.
func (s *Scorer) scoreTargetsPooled(ctx context.Context, targets []string, prediction string) ([]map[string]Score, error) {
	pool, err := ants.NewPool(s.concurrency)
	if err != nil {
		return nil, fmt.Errorf("rouge: create scoring pool: %w", err)
	}
	defer pool.Release()

	results := make([]map[string]Score, len(targets))
	errs := make([]error, len(targets))
	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			results[i], errs[i] = s.Score(ctx, target, prediction)
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = fmt.Errorf("rouge: submit scoring task: %w", submitErr)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
