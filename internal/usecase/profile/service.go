package profile

import (
	"context"
	"fmt"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/config"
	"github.com/cldprgm/Network-vibe/internal/ranking"
	"github.com/cldprgm/Network-vibe/internal/repository"
	redisRepo "github.com/cldprgm/Network-vibe/internal/repository/redis"
	"github.com/cldprgm/Network-vibe/internal/usecase/feed"
	"github.com/cldprgm/Network-vibe/internal/usecase/recommend"
)

// postsPage 作者帖子列表缓存的第一页，不含当前用户的投票
type postsPage struct {
	Posts []domain.Post `json:"posts"`
	Next  string        `json:"next"`
}

type communitiesPage struct {
	Communities []domain.Community `json:"communities"`
	Next        string             `json:"next"`
}

type Service struct {
	lists          *repository.ListRepository
	hydrator       *feed.Hydrator
	userRepo       domain.UserRepository
	postRepo       domain.PostRepository
	communityRepo  domain.CommunityRepository
	membershipRepo domain.MembershipRepository
	cfg            config.RankingConfig
}

var _ domain.ProfileUsecase = (*Service)(nil)

// NewService will create a new profile service object
func NewService(
	lists *repository.ListRepository,
	hydrator *feed.Hydrator,
	u domain.UserRepository,
	p domain.PostRepository,
	c domain.CommunityRepository,
	m domain.MembershipRepository,
	cfg config.RankingConfig,
) *Service {
	return &Service{
		lists:          lists,
		hydrator:       hydrator,
		userRepo:       u,
		postRepo:       p,
		communityRepo:  c,
		membershipRepo: m,
		cfg:            cfg,
	}
}

func (s *Service) UserPosts(ctx context.Context, viewer domain.Viewer, slug string, filter domain.PostFilter, cursor string) (domain.FeedPage, error) {
	author, err := s.userRepo.GetBySlug(ctx, slug)
	if err != nil {
		return domain.FeedPage{}, err
	}

	build := func(ctx context.Context) (postsPage, error) {
		ids, err := s.postRepo.IDsByAuthor(ctx, author.ID, filter, s.cfg.MaxListSize)
		if err != nil {
			return postsPage{}, fmt.Errorf("list posts of %s: %w", slug, err)
		}
		page := ranking.Paginate(ids, cursor, s.cfg.ProfilePageSize)
		posts, err := s.hydrator.Posts(ctx, page.IDs)
		if err != nil {
			return postsPage{}, err
		}
		return postsPage{Posts: posts, Next: page.NextCursor}, nil
	}

	var page postsPage
	if cursor == "" {
		page, err = repository.FetchPayload(ctx, s.lists, redisRepo.UserPostsFirstPageKey(slug, filter), s.cfg.ProfileTTL, build)
	} else {
		page, err = build(ctx)
	}
	if err != nil {
		return domain.FeedPage{}, err
	}

	items, err := s.hydrator.Votes(ctx, viewer, page.Posts)
	if err != nil {
		return domain.FeedPage{}, err
	}
	return domain.FeedPage{Items: items, NextCursor: page.Next}, nil
}

func (s *Service) UserCommunities(ctx context.Context, viewer domain.Viewer, slug string, cursor string) (domain.CommunityPage, error) {
	user, err := s.userRepo.GetBySlug(ctx, slug)
	if err != nil {
		return domain.CommunityPage{}, err
	}

	build := func(ctx context.Context) (communitiesPage, error) {
		ids, err := s.membershipRepo.CommunityIDsOf(ctx, user.ID, s.cfg.MaxListSize)
		if err != nil {
			return communitiesPage{}, fmt.Errorf("list communities of %s: %w", slug, err)
		}
		page := ranking.Paginate(ids, cursor, s.cfg.CommunityPageSize)
		communities, err := recommend.Communities(ctx, s.communityRepo, page.IDs)
		if err != nil {
			return communitiesPage{}, err
		}
		return communitiesPage{Communities: communities, Next: page.NextCursor}, nil
	}

	var page communitiesPage
	if cursor == "" {
		page, err = repository.FetchPayload(ctx, s.lists, redisRepo.UserCommunitiesFirstPageKey(slug), s.cfg.ProfileTTL, build)
	} else {
		page, err = build(ctx)
	}
	if err != nil {
		return domain.CommunityPage{}, err
	}

	items, err := recommend.JoinMembership(ctx, s.membershipRepo, viewer, page.Communities)
	if err != nil {
		return domain.CommunityPage{}, err
	}
	return domain.CommunityPage{Items: items, Next: page.Next}, nil
}
