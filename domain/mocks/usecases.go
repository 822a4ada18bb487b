package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cldprgm/Network-vibe/domain"
)

// FeedUsecase is a mock of domain.FeedUsecase
type FeedUsecase struct{ mock.Mock }

func (m *FeedUsecase) Fetch(ctx context.Context, viewer domain.Viewer, cursor string, pageSize int) (domain.FeedPage, error) {
	args := m.Called(ctx, viewer, cursor, pageSize)
	return args.Get(0).(domain.FeedPage), args.Error(1)
}

// RecommendationUsecase is a mock of domain.RecommendationUsecase
type RecommendationUsecase struct{ mock.Mock }

func (m *RecommendationUsecase) Recommend(ctx context.Context, viewer domain.Viewer, cursor string) (domain.CommunityRecommendations, error) {
	args := m.Called(ctx, viewer, cursor)
	return args.Get(0).(domain.CommunityRecommendations), args.Error(1)
}

// ProfileUsecase is a mock of domain.ProfileUsecase
type ProfileUsecase struct{ mock.Mock }

func (m *ProfileUsecase) UserPosts(ctx context.Context, viewer domain.Viewer, slug string, filter domain.PostFilter, cursor string) (domain.FeedPage, error) {
	args := m.Called(ctx, viewer, slug, filter, cursor)
	return args.Get(0).(domain.FeedPage), args.Error(1)
}

func (m *ProfileUsecase) UserCommunities(ctx context.Context, viewer domain.Viewer, slug string, cursor string) (domain.CommunityPage, error) {
	args := m.Called(ctx, viewer, slug, cursor)
	return args.Get(0).(domain.CommunityPage), args.Error(1)
}

// MembershipUsecase is a mock of domain.MembershipUsecase
type MembershipUsecase struct{ mock.Mock }

func (m *MembershipUsecase) Join(ctx context.Context, userID, communityID int64) error {
	return m.Called(ctx, userID, communityID).Error(0)
}

func (m *MembershipUsecase) Leave(ctx context.Context, userID, communityID int64) error {
	return m.Called(ctx, userID, communityID).Error(0)
}

var (
	_ domain.FeedUsecase           = (*FeedUsecase)(nil)
	_ domain.RecommendationUsecase = (*RecommendationUsecase)(nil)
	_ domain.ProfileUsecase        = (*ProfileUsecase)(nil)
	_ domain.MembershipUsecase     = (*MembershipUsecase)(nil)
)

// ContentUsecase is a mock of domain.ContentUsecase
type ContentUsecase struct{ mock.Mock }

func (m *ContentUsecase) CreatePost(ctx context.Context, p *domain.Post) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ContentUsecase) DeletePost(ctx context.Context, userID, postID int64) error {
	return m.Called(ctx, userID, postID).Error(0)
}

func (m *ContentUsecase) Vote(ctx context.Context, userID, postID int64, value int8) error {
	return m.Called(ctx, userID, postID, value).Error(0)
}

func (m *ContentUsecase) Unvote(ctx context.Context, userID, postID int64) error {
	return m.Called(ctx, userID, postID).Error(0)
}

func (m *ContentUsecase) Comment(ctx context.Context, c *domain.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *ContentUsecase) DeleteComment(ctx context.Context, userID, commentID int64) error {
	return m.Called(ctx, userID, commentID).Error(0)
}

// CommunityUsecase is a mock of domain.CommunityUsecase
type CommunityUsecase struct{ mock.Mock }

func (m *CommunityUsecase) Update(ctx context.Context, userID int64, c *domain.Community) error {
	return m.Called(ctx, userID, c).Error(0)
}

var (
	_ domain.ContentUsecase   = (*ContentUsecase)(nil)
	_ domain.CommunityUsecase = (*CommunityUsecase)(nil)
)
