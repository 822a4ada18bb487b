package domain

import (
	"context"
	"time"
)

// JobReport summarises one run of a scoring job
type JobReport struct {
	Job      string
	Updated  int64
	Duration time.Duration
}

// ScoreUsecase recomputes persisted relevance scores. Each job is all-or-nothing.
type ScoreUsecase interface {
	RecomputePostScores(ctx context.Context) (JobReport, error)
	RecomputeCommunityActivity(ctx context.Context) (JobReport, error)
}
