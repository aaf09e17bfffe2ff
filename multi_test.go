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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScoreMulti_MaxFMeasure verifies multi-reference scoring selects the max F-measure per type.
func TestScoreMulti_MaxFMeasure(t *testing.T) {
	s, err := New(WithRougeTypes("rouge1", "rouge2", "rougeL"))
	require.NoError(t, err)
	result, err := s.ScoreMulti(
		context.Background(),
		[]string{"first text", "first something"},
		"text first",
	)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, result["rouge1"].FMeasure, 1e-12)
	assert.InDelta(t, 0.0, result["rouge2"].FMeasure, 1e-12)
	assert.InDelta(t, 0.5, result["rougeL"].FMeasure, 1e-12)
}

// TestScoreMulti_BestReferenceWins verifies the whole Score record of the best reference is kept.
func TestScoreMulti_BestReferenceWins(t *testing.T) {
	s, err := New(WithRougeTypes("rouge1"))
	require.NoError(t, err)
	// Against "a b c d" the prediction scores F=1; against "a x y z" it
	// scores 0.25. The returned record must be the first one entirely.
	result, err := s.ScoreMulti(
		context.Background(),
		[]string{"a b c d", "a x y z"},
		"a b c d",
	)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, result["rouge1"].Precision, 1e-12)
	assert.InDelta(t, 1.0, result["rouge1"].Recall, 1e-12)
	assert.InDelta(t, 1.0, result["rouge1"].FMeasure, 1e-12)
}

// TestScoreMulti_TieFirstOccurrence verifies ties keep the earlier reference's record.
func TestScoreMulti_TieFirstOccurrence(t *testing.T) {
	s, err := New(WithRougeTypes("rouge1"))
	require.NoError(t, err)
	// Both references yield F=0.4 with different precision/recall splits:
	// the first through P=1/4, R=1, the second through P=1/2, R=1/3. The
	// first record must win the tie.
	result, err := s.ScoreMulti(
		context.Background(),
		[]string{"p1", "p1 p2 a b c d"},
		"p1 p2 p3 p4",
	)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, result["rouge1"].FMeasure, 1e-12)
	assert.InDelta(t, 0.25, result["rouge1"].Precision, 1e-12)
	assert.InDelta(t, 1.0, result["rouge1"].Recall, 1e-12)
}

// TestScoreMulti_EmptyTargets verifies that an empty target list is rejected.
func TestScoreMulti_EmptyTargets(t *testing.T) {
	s, err := New(WithRougeTypes("rouge1"))
	require.NoError(t, err)
	_, err = s.ScoreMulti(context.Background(), nil, "prediction")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "targets are empty")
}

// TestScoreMulti_PooledMatchesSequential verifies pooled scoring returns the sequential result.
func TestScoreMulti_PooledMatchesSequential(t *testing.T) {
	targets := []string{
		"the cat sat on the mat",
		"a dog barked at the mailman",
		"the quick brown fox jumps over the lazy dog",
		"rain fell softly on the roof",
	}
	prediction := "the quick brown dog jumps on the log"

	sequential, err := New(WithRougeTypes("rouge1", "rouge2", "rougeL"))
	require.NoError(t, err)
	pooled, err := New(WithRougeTypes("rouge1", "rouge2", "rougeL"), WithConcurrency(4))
	require.NoError(t, err)

	want, err := sequential.ScoreMulti(context.Background(), targets, prediction)
	require.NoError(t, err)
	got, err := pooled.ScoreMulti(context.Background(), targets, prediction)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestScoreMulti_PooledPropagatesError verifies pooled scoring surfaces per-target failures.
func TestScoreMulti_PooledPropagatesError(t *testing.T) {
	s, err := New(WithRougeTypes("rouge1"), WithConcurrency(2))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.ScoreMulti(ctx, []string{"a", "b", "c"}, "a")
	require.Error(t, err)
}
