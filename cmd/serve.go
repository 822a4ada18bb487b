package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/events"
	"github.com/cldprgm/Network-vibe/internal/ranking"
	"github.com/cldprgm/Network-vibe/internal/repository"
	mysqlRepo "github.com/cldprgm/Network-vibe/internal/repository/mysql"
	redisRepo "github.com/cldprgm/Network-vibe/internal/repository/redis"
	"github.com/cldprgm/Network-vibe/internal/rest"
	"github.com/cldprgm/Network-vibe/internal/rest/middleware"
	"github.com/cldprgm/Network-vibe/internal/usecase/community"
	"github.com/cldprgm/Network-vibe/internal/usecase/content"
	"github.com/cldprgm/Network-vibe/internal/usecase/feed"
	"github.com/cldprgm/Network-vibe/internal/usecase/membership"
	"github.com/cldprgm/Network-vibe/internal/usecase/profile"
	"github.com/cldprgm/Network-vibe/internal/usecase/recommend"
	"github.com/cldprgm/Network-vibe/internal/usecase/score"
	"github.com/cldprgm/Network-vibe/internal/workers"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, the cache invalidation listener and the score worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		db, err := openDB(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer closeDB(db)
		if cfg.Database.Migrate {
			if err := mysqlRepo.Migrate(db); err != nil {
				return err
			}
		}

		client := openCache(ctx, cfg.Cache, cfg.Database)
		defer func() {
			if err := client.Close(); err != nil {
				logrus.WithError(err).Error("got error when closing the cache connection")
			}
		}()

		bus, err := events.NewBus(events.NewLogger())
		if err != nil {
			return err
		}
		defer func() {
			if err := bus.Close(); err != nil {
				logrus.WithError(err).Error("failed to close event bus")
			}
		}()
		publisher := events.NewPublisher(bus.PubSub)

		// DB层
		userRepo := mysqlRepo.NewUserRepository(db)
		postDB := mysqlRepo.NewPostRepository(db)
		communityDB := mysqlRepo.NewCommunityRepository(db)

		// 写操作发布领域事件
		postRepo := repository.NewPostRepository(postDB, userRepo, publisher)
		communityRepo := repository.NewCommunityRepository(communityDB, userRepo, publisher)
		membershipRepo := repository.NewMembershipRepository(mysqlRepo.NewMembershipRepository(db), userRepo, publisher)
		commentRepo := repository.NewCommentRepository(mysqlRepo.NewCommentRepository(db), userRepo, publisher)
		ratingRepo := repository.NewRatingRepository(mysqlRepo.NewRatingRepository(db), userRepo, publisher)

		// Cache层
		lists := repository.NewListRepository(redisRepo.NewListCache(client))

		events.NewListener(lists).Register(bus.Router, bus.PubSub)
		if err := bus.Start(ctx); err != nil {
			return err
		}

		hydrator := feed.NewHydrator(postRepo, userRepo, communityRepo, ratingRepo)
		feedSvc := feed.NewService(lists, hydrator, postRepo, ratingRepo, cfg.Ranking, ranking.NewRandomSource(cfg.Ranking.Seed))
		recommendSvc := recommend.NewService(lists, communityRepo, membershipRepo, cfg.Ranking)
		profileSvc := profile.NewService(lists, hydrator, userRepo, postRepo, communityRepo, membershipRepo, cfg.Ranking)
		membershipSvc := membership.NewService(membershipRepo)
		contentSvc := content.NewService(postRepo, commentRepo, ratingRepo, communityRepo)
		communitySvc := community.NewService(communityRepo)

		scoreSvc := newScoreService(postDB, communityDB)
		go workers.NewScoreWorker(scoreSvc, cfg.Score.Interval).Start(ctx)

		// prepare gin
		route := gin.Default()
		route.Use(middleware.CORS())
		route.Use(middleware.Metrics())
		route.Use(middleware.SetRequestContextWithTimeout(time.Duration(cfg.Server.ContextTimeout) * time.Second))

		rest.Register(route, rest.Handlers{
			Feed:           rest.NewFeedHandler(feedSvc),
			Recommendation: rest.NewRecommendationHandler(recommendSvc),
			Profile:        rest.NewProfileHandler(profileSvc),
			Membership:     rest.NewMembershipHandler(membershipSvc),
			Content:        rest.NewContentHandler(contentSvc),
			Community:      rest.NewCommunityHandler(communitySvc),
		}, middleware.Auth(cfg.Auth.JWTSecret, cfg.Auth.SessionHeader))

		srv := &http.Server{
			Addr:    cfg.Server.Address,
			Handler: route,
		}
		errCh := make(chan error, 1)
		go func() {
			logrus.Infof("Server is running on %s", cfg.Server.Address)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case <-ctx.Done():
			logrus.Info("Shutdown signal received, stopping server...")
		case err := <-errCh:
			return err
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logrus.Info("Server exiting")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// newScoreService runs on the plain repositories, score writes publish nothing.
func newScoreService(posts domain.PostRepository, communities domain.CommunityRepository) *score.Service {
	cfg := GetConfig()
	return score.NewService(posts, communities, score.Config{
		PostWindow:     cfg.Score.PostWindow,
		ActivityWindow: cfg.Score.ActivityWindow,
		Weights:        cfg.Score.Weights,
	}, ranking.NewRandomSource(cfg.Ranking.Seed))
}
