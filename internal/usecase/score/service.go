package score

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/metrics"
	"github.com/cldprgm/Network-vibe/internal/ranking"
)

const (
	JobPostScores        = "post_scores"
	JobCommunityActivity = "community_activity"
)

type Config struct {
	PostWindow     time.Duration
	ActivityWindow time.Duration
	Weights        ranking.Weights
}

type Service struct {
	postRepo      domain.PostRepository
	communityRepo domain.CommunityRepository
	cfg           Config
	rand          ranking.RandomSource
	now           func() time.Time
}

var _ domain.ScoreUsecase = (*Service)(nil)

type Option func(*Service)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService will create a new score service object
func NewService(p domain.PostRepository, c domain.CommunityRepository, cfg Config, src ranking.RandomSource, opts ...Option) *Service {
	if src == nil {
		src = ranking.ZeroSource{}
	}
	s := &Service{
		postRepo:      p,
		communityRepo: c,
		cfg:           cfg,
		rand:          src,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecomputePostScores rescores every published post inside the lookback window.
// All scores are written in one transaction, so a failure leaves the old ones.
func (s *Service) RecomputePostScores(ctx context.Context) (report domain.JobReport, err error) {
	start := time.Now()
	report.Job = JobPostScores
	defer func() {
		report.Duration = time.Since(start)
		metrics.RecordScoreJob(report.Job, report.Updated, report.Duration, err)
	}()

	now := s.now()
	signals, err := s.postRepo.FetchScoreSignals(ctx, now.Add(-s.cfg.PostWindow))
	if err != nil {
		return report, fmt.Errorf("fetch score signals: %w", err)
	}
	if len(signals) == 0 {
		return report, nil
	}

	updates := make([]domain.ScoreUpdate, 0, len(signals))
	for _, sig := range signals {
		updates = append(updates, domain.ScoreUpdate{
			ID:    sig.ID,
			Score: ranking.PostScore(s.cfg.Weights, sig, now, s.rand),
		})
	}

	if err = s.postRepo.BulkUpdateScores(ctx, updates); err != nil {
		return report, fmt.Errorf("write post scores: %w", err)
	}
	report.Updated = int64(len(updates))
	logrus.Infof("post scores recomputed: %d posts", report.Updated)
	return report, nil
}

// RecomputeCommunityActivity sets activity_score to the number of posts each
// community got inside the activity window and resets communities that went quiet.
func (s *Service) RecomputeCommunityActivity(ctx context.Context) (report domain.JobReport, err error) {
	start := time.Now()
	report.Job = JobCommunityActivity
	defer func() {
		report.Duration = time.Since(start)
		metrics.RecordScoreJob(report.Job, report.Updated, report.Duration, err)
	}()

	counts, err := s.communityRepo.CountRecentPosts(ctx, s.now().Add(-s.cfg.ActivityWindow))
	if err != nil {
		return report, fmt.Errorf("count recent posts: %w", err)
	}

	touched, err := s.communityRepo.ApplyActivityScores(ctx, counts)
	if err != nil {
		return report, fmt.Errorf("apply activity scores: %w", err)
	}
	report.Updated = touched
	logrus.Infof("community activity recomputed: %d active, %d rows touched", len(counts), touched)
	return report, nil
}
