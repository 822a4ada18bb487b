package recommend

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

// envelope is the cached form of a recommendation page. Membership flags are
// per viewer and never part of it.
type envelope struct {
	Type        domain.RecommendationType `json:"type"`
	Communities []domain.Community        `json:"communities"`
	Next        string                    `json:"next"`
}

type Service struct {
	lists          *repository.ListRepository
	communityRepo  domain.CommunityRepository
	membershipRepo domain.MembershipRepository
	cfg            config.RankingConfig
}

var _ domain.RecommendationUsecase = (*Service)(nil)

// NewService will create a new recommendation service object
func NewService(lists *repository.ListRepository, c domain.CommunityRepository, m domain.MembershipRepository, cfg config.RankingConfig) *Service {
	return &Service{
		lists:          lists,
		communityRepo:  c,
		membershipRepo: m,
		cfg:            cfg,
	}
}

func (s *Service) Recommend(ctx context.Context, viewer domain.Viewer, cursor string) (domain.CommunityRecommendations, error) {
	var (
		env envelope
		err error
	)
	build := func(ctx context.Context) (envelope, error) {
		return s.page(ctx, viewer, cursor)
	}

	// 登录用户只缓存第一页
	if key, ttl := s.cacheKey(viewer, cursor); key != "" {
		env, err = repository.FetchPayload(ctx, s.lists, key, ttl, build)
	} else {
		env, err = build(ctx)
	}
	if err != nil {
		return domain.CommunityRecommendations{}, err
	}

	items, err := JoinMembership(ctx, s.membershipRepo, viewer, env.Communities)
	if err != nil {
		return domain.CommunityRecommendations{}, err
	}
	return domain.CommunityRecommendations{
		Type: env.Type,
		CommunityPage: domain.CommunityPage{
			Items: items,
			Next:  env.Next,
		},
	}, nil
}

func (s *Service) cacheKey(viewer domain.Viewer, cursor string) (string, time.Duration) {
	if !viewer.IsAuthenticated() {
		return redisRepo.UnauthRecsKey(cursor), s.cfg.UnauthRecsTTL
	}
	if cursor == "" {
		return redisRepo.AuthRecsFirstPageKey(viewer.UserID), s.cfg.AuthRecsTTL
	}
	return "", 0
}

func (s *Service) page(ctx context.Context, viewer domain.Viewer, cursor string) (envelope, error) {
	typ, ids, err := s.candidates(ctx, viewer)
	if err != nil {
		return envelope{}, err
	}

	page := ranking.Paginate(ids, cursor, s.cfg.CommunityPageSize)
	communities, err := Communities(ctx, s.communityRepo, page.IDs)
	if err != nil {
		return envelope{}, err
	}
	return envelope{Type: typ, Communities: communities, Next: page.NextCursor}, nil
}

// candidates resolves exactly one of the recommendation branches for the viewer.
func (s *Service) candidates(ctx context.Context, viewer domain.Viewer) (domain.RecommendationType, []int64, error) {
	if !viewer.IsAuthenticated() {
		ids, err := s.communityRepo.QueryIDs(ctx, domain.CommunityQuery{
			Order: domain.OrderByActivity,
			Limit: s.cfg.MaxListSize,
		})
		if err != nil {
			return "", nil, fmt.Errorf("query active communities: %w", err)
		}
		return domain.UnauthenticatedRecommendations, ids, nil
	}

	subscribed, err := s.membershipRepo.CommunityIDsOf(ctx, viewer.UserID, 0)
	if err != nil {
		return "", nil, fmt.Errorf("load subscriptions: %w", err)
	}

	if len(subscribed) == 0 {
		ids, err := s.communityRepo.QueryIDs(ctx, domain.CommunityQuery{
			Order: domain.OrderByMembers,
			Limit: s.cfg.MaxListSize,
		})
		if err != nil {
			return "", nil, fmt.Errorf("query popular communities: %w", err)
		}
		return domain.JustPopularCommunities, ids, nil
	}

	categories, err := s.communityRepo.CategoryIDsOf(ctx, subscribed)
	if err != nil {
		return "", nil, fmt.Errorf("load subscribed categories: %w", err)
	}
	if len(categories) == 0 {
		return domain.RecommendedCommunities, []int64{}, nil
	}

	ids, err := s.communityRepo.QueryIDs(ctx, domain.CommunityQuery{
		CategoryIDs: categories,
		ExcludeIDs:  subscribed,
		Order:       domain.OrderByActivity,
		Limit:       s.cfg.MaxListSize,
	})
	if err != nil {
		return "", nil, fmt.Errorf("query related communities: %w", err)
	}
	return domain.RecommendedCommunities, ids, nil
}
