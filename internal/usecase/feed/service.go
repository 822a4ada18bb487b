package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/config"
	"github.com/cldprgm/Network-vibe/internal/ranking"
	"github.com/cldprgm/Network-vibe/internal/repository"
	redisRepo "github.com/cldprgm/Network-vibe/internal/repository/redis"
)

type Service struct {
	lists    *repository.ListRepository
	hydrator *Hydrator
	builder  builder
	cfg      config.RankingConfig
}

var _ domain.FeedUsecase = (*Service)(nil)

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.builder.now = now }
}

// NewService will create a new feed service object
func NewService(
	lists *repository.ListRepository,
	hydrator *Hydrator,
	p domain.PostRepository,
	r domain.RatingRepository,
	cfg config.RankingConfig,
	src ranking.RandomSource,
	opts ...Option,
) *Service {
	if src == nil {
		src = ranking.ZeroSource{}
	}
	s := &Service{
		lists:    lists,
		hydrator: hydrator,
		cfg:      cfg,
		builder: builder{
			postRepo:           p,
			ratingRepo:         r,
			trendingWindow:     cfg.TrendingWindow,
			personalizedWindow: cfg.PersonalizedWindow,
			pool:               cfg.CandidatePool,
			maxList:            cfg.MaxListSize,
			high:               cfg.HighRelevance,
			low:                cfg.LowRelevance,
			jitter:             cfg.BuildJitter,
			rand:               src,
			now:                time.Now,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Fetch(ctx context.Context, viewer domain.Viewer, cursor string, pageSize int) (domain.FeedPage, error) {
	ids, err := s.listFor(ctx, viewer)
	if err != nil {
		return domain.FeedPage{}, err
	}

	page := ranking.Paginate(ids, cursor, s.clamp(pageSize))
	if len(page.IDs) == 0 {
		return domain.FeedPage{Items: []domain.FeedItem{}}, nil
	}

	items, err := s.hydrator.Items(ctx, viewer, page.IDs)
	if err != nil {
		return domain.FeedPage{}, err
	}
	return domain.FeedPage{Items: items, NextCursor: page.NextCursor}, nil
}

// listFor picks the cached list of the viewer.
func (s *Service) listFor(ctx context.Context, viewer domain.Viewer) ([]int64, error) {
	switch {
	case viewer.IsAuthenticated():
		key := redisRepo.UserRecommendationsKey(viewer.UserID)
		ids, err := s.lists.FetchIDs(ctx, key, s.cfg.PersonalizedTTL, func(ctx context.Context) ([]int64, error) {
			return s.builder.personalized(ctx, viewer.UserID)
		})
		if err != nil {
			return nil, fmt.Errorf("personalized feed: %w", err)
		}
		return ids, nil
	case viewer.SessionID != "":
		// 会话快照：会话内分页稳定，过期后重新取当前热门
		key := redisRepo.SessionFeedKey(viewer.SessionID)
		ids, err := s.lists.FetchIDs(ctx, key, s.cfg.SessionTTL, func(ctx context.Context) ([]int64, error) {
			trending, err := s.trending(ctx)
			if err != nil {
				return nil, err
			}
			return append([]int64(nil), trending...), nil
		})
		if err != nil {
			return nil, fmt.Errorf("session feed: %w", err)
		}
		return ids, nil
	default:
		ids, err := s.trending(ctx)
		if err != nil {
			return nil, fmt.Errorf("trending feed: %w", err)
		}
		return ids, nil
	}
}

func (s *Service) trending(ctx context.Context) ([]int64, error) {
	return s.lists.FetchIDs(ctx, redisRepo.KeyTrendingPosts, s.cfg.TrendingTTL, s.builder.trending)
}

func (s *Service) clamp(pageSize int) int {
	if pageSize <= 0 {
		return s.cfg.FeedPageSize
	}
	if pageSize > s.cfg.FeedMaxPageSize {
		return s.cfg.FeedMaxPageSize
	}
	return pageSize
}
