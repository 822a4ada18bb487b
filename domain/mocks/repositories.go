// Package mocks holds testify mocks of the domain interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/cldprgm/Network-vibe/domain"
)

func ids(args mock.Arguments, i int) []int64 {
	if v := args.Get(i); v != nil {
		return v.([]int64)
	}
	return nil
}

// PostRepository is a mock of domain.PostRepository
type PostRepository struct{ mock.Mock }

func (m *PostRepository) QueryCandidates(ctx context.Context, q domain.PostQuery) ([]domain.Candidate, error) {
	args := m.Called(ctx, q)
	var res []domain.Candidate
	if v := args.Get(0); v != nil {
		res = v.([]domain.Candidate)
	}
	return res, args.Error(1)
}

func (m *PostRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Post), args.Error(1)
}

func (m *PostRepository) GetByIDs(ctx context.Context, postIDs []int64) ([]domain.Post, error) {
	args := m.Called(ctx, postIDs)
	var res []domain.Post
	if v := args.Get(0); v != nil {
		res = v.([]domain.Post)
	}
	return res, args.Error(1)
}

func (m *PostRepository) IDsByAuthor(ctx context.Context, authorID int64, filter domain.PostFilter, limit int) ([]int64, error) {
	args := m.Called(ctx, authorID, filter, limit)
	return ids(args, 0), args.Error(1)
}

func (m *PostRepository) CommunityIDsOf(ctx context.Context, postIDs []int64) ([]int64, error) {
	args := m.Called(ctx, postIDs)
	return ids(args, 0), args.Error(1)
}

func (m *PostRepository) FetchScoreSignals(ctx context.Context, since time.Time) ([]domain.ScoreSignal, error) {
	args := m.Called(ctx, since)
	var res []domain.ScoreSignal
	if v := args.Get(0); v != nil {
		res = v.([]domain.ScoreSignal)
	}
	return res, args.Error(1)
}

func (m *PostRepository) BulkUpdateScores(ctx context.Context, updates []domain.ScoreUpdate) error {
	return m.Called(ctx, updates).Error(0)
}

func (m *PostRepository) Store(ctx context.Context, p *domain.Post) error {
	return m.Called(ctx, p).Error(0)
}

func (m *PostRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// CommunityRepository is a mock of domain.CommunityRepository
type CommunityRepository struct{ mock.Mock }

func (m *CommunityRepository) QueryIDs(ctx context.Context, q domain.CommunityQuery) ([]int64, error) {
	args := m.Called(ctx, q)
	return ids(args, 0), args.Error(1)
}

func (m *CommunityRepository) GetByID(ctx context.Context, id int64) (domain.Community, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Community), args.Error(1)
}

func (m *CommunityRepository) GetByIDs(ctx context.Context, communityIDs []int64) ([]domain.Community, error) {
	args := m.Called(ctx, communityIDs)
	var res []domain.Community
	if v := args.Get(0); v != nil {
		res = v.([]domain.Community)
	}
	return res, args.Error(1)
}

func (m *CommunityRepository) CategoryIDsOf(ctx context.Context, communityIDs []int64) ([]int64, error) {
	args := m.Called(ctx, communityIDs)
	return ids(args, 0), args.Error(1)
}

func (m *CommunityRepository) CountRecentPosts(ctx context.Context, since time.Time) (map[int64]int64, error) {
	args := m.Called(ctx, since)
	var res map[int64]int64
	if v := args.Get(0); v != nil {
		res = v.(map[int64]int64)
	}
	return res, args.Error(1)
}

func (m *CommunityRepository) ApplyActivityScores(ctx context.Context, counts map[int64]int64) (int64, error) {
	args := m.Called(ctx, counts)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CommunityRepository) Update(ctx context.Context, c *domain.Community) error {
	return m.Called(ctx, c).Error(0)
}

// MembershipRepository is a mock of domain.MembershipRepository
type MembershipRepository struct{ mock.Mock }

func (m *MembershipRepository) Create(ctx context.Context, ms *domain.Membership) error {
	return m.Called(ctx, ms).Error(0)
}

func (m *MembershipRepository) Delete(ctx context.Context, userID, communityID int64) error {
	return m.Called(ctx, userID, communityID).Error(0)
}

func (m *MembershipRepository) CommunityIDsOf(ctx context.Context, userID int64, limit int) ([]int64, error) {
	args := m.Called(ctx, userID, limit)
	return ids(args, 0), args.Error(1)
}

func (m *MembershipRepository) MemberOf(ctx context.Context, userID int64, communityIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, userID, communityIDs)
	var res map[int64]bool
	if v := args.Get(0); v != nil {
		res = v.(map[int64]bool)
	}
	return res, args.Error(1)
}

// RatingRepository is a mock of domain.RatingRepository
type RatingRepository struct{ mock.Mock }

func (m *RatingRepository) LikedPostIDs(ctx context.Context, userID int64, limit int) ([]int64, error) {
	args := m.Called(ctx, userID, limit)
	return ids(args, 0), args.Error(1)
}

func (m *RatingRepository) VotesOf(ctx context.Context, userID int64, postIDs []int64) (map[int64]int8, error) {
	args := m.Called(ctx, userID, postIDs)
	var res map[int64]int8
	if v := args.Get(0); v != nil {
		res = v.(map[int64]int8)
	}
	return res, args.Error(1)
}

func (m *RatingRepository) Rate(ctx context.Context, r *domain.Rating) error {
	return m.Called(ctx, r).Error(0)
}

func (m *RatingRepository) Unrate(ctx context.Context, target domain.TargetType, targetID, userID int64) error {
	return m.Called(ctx, target, targetID, userID).Error(0)
}

// UserRepository is a mock of domain.UserRepository
type UserRepository struct{ mock.Mock }

func (m *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserRepository) GetBySlug(ctx context.Context, slug string) (domain.User, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserRepository) GetByIDs(ctx context.Context, userIDs []int64) ([]domain.User, error) {
	args := m.Called(ctx, userIDs)
	var res []domain.User
	if v := args.Get(0); v != nil {
		res = v.([]domain.User)
	}
	return res, args.Error(1)
}

// CommentRepository is a mock of domain.CommentRepository
type CommentRepository struct{ mock.Mock }

func (m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CommentRepository) Delete(ctx context.Context, id int64, userID int64) (domain.Comment, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.Comment), args.Error(1)
}

// EventPublisher is a mock of domain.EventPublisher
type EventPublisher struct{ mock.Mock }

func (m *EventPublisher) Publish(ctx context.Context, ev domain.Event) error {
	return m.Called(ctx, ev).Error(0)
}

var (
	_ domain.PostRepository       = (*PostRepository)(nil)
	_ domain.CommunityRepository  = (*CommunityRepository)(nil)
	_ domain.MembershipRepository = (*MembershipRepository)(nil)
	_ domain.RatingRepository     = (*RatingRepository)(nil)
	_ domain.UserRepository       = (*UserRepository)(nil)
	_ domain.CommentRepository    = (*CommentRepository)(nil)
	_ domain.EventPublisher       = (*EventPublisher)(nil)
)
