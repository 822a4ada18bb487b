package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cldprgm/Network-vibe/domain"
)

// scoreWorker runs both score jobs on every tick. Runs never overlap: a slow run
// delays the next tick instead of racing it.
type scoreWorker struct {
	score    domain.ScoreUsecase
	interval time.Duration
}

func NewScoreWorker(s domain.ScoreUsecase, interval time.Duration) *scoreWorker {
	return &scoreWorker{
		score:    s,
		interval: interval,
	}
}

// Start blocks until ctx is done. The first run happens right away.
func (w *scoreWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.RunOnce(ctx)
	for {
		select {
		case <-ticker.C:
			w.RunOnce(ctx)
		case <-ctx.Done():
			logrus.Info("shutting down ScoreWorker")
			return
		}
	}
}

// RunOnce runs both jobs. A failed job is logged and retried on the next tick;
// the other job still runs.
func (w *scoreWorker) RunOnce(ctx context.Context) {
	if report, err := w.score.RecomputePostScores(ctx); err != nil {
		logrus.Errorf("post score job failed, keeping previous scores: %v", err)
	} else {
		logrus.Debugf("%s: %d rows in %s", report.Job, report.Updated, report.Duration)
	}

	if report, err := w.score.RecomputeCommunityActivity(ctx); err != nil {
		logrus.Errorf("community activity job failed, keeping previous scores: %v", err)
	} else {
		logrus.Debugf("%s: %d rows in %s", report.Job, report.Updated, report.Duration)
	}
}
