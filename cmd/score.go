package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cldprgm/Network-vibe/domain"
	mysqlRepo "github.com/cldprgm/Network-vibe/internal/repository/mysql"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Recompute persisted scores once",
}

func runScoreJob(job func(*scoreJobs, context.Context) (domain.JobReport, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		ctx := cmd.Context()

		db, err := openDB(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer closeDB(db)

		jobs := &scoreJobs{svc: newScoreService(mysqlRepo.NewPostRepository(db), mysqlRepo.NewCommunityRepository(db))}
		report, err := job(jobs, ctx)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"job":      report.Job,
			"updated":  report.Updated,
			"duration": report.Duration,
		}).Info("score job finished")
		return nil
	}
}

type scoreJobs struct {
	svc domain.ScoreUsecase
}

func (j *scoreJobs) posts(ctx context.Context) (domain.JobReport, error) {
	return j.svc.RecomputePostScores(ctx)
}

func (j *scoreJobs) communities(ctx context.Context) (domain.JobReport, error) {
	return j.svc.RecomputeCommunityActivity(ctx)
}

func init() {
	scoreCmd.AddCommand(&cobra.Command{
		Use:   "posts",
		Short: "Recompute post relevance scores",
		RunE:  runScoreJob((*scoreJobs).posts),
	})
	scoreCmd.AddCommand(&cobra.Command{
		Use:   "communities",
		Short: "Recompute community activity scores",
		RunE:  runScoreJob((*scoreJobs).communities),
	})
	rootCmd.AddCommand(scoreCmd)
}
