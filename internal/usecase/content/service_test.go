package content_test

import (
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/domain/mocks"
	"github.com/cldprgm/Network-vibe/internal/usecase/content"
)

type fixture struct {
	posts       *mocks.PostRepository
	comments    *mocks.CommentRepository
	ratings     *mocks.RatingRepository
	communities *mocks.CommunityRepository
	svc         *content.Service
}

func newFixture() *fixture {
	f := &fixture{
		posts:       new(mocks.PostRepository),
		comments:    new(mocks.CommentRepository),
		ratings:     new(mocks.RatingRepository),
		communities: new(mocks.CommunityRepository),
	}
	f.svc = content.NewService(f.posts, f.comments, f.ratings, f.communities)
	return f
}

func TestCreatePost(t *testing.T) {
	f := newFixture()
	p := &domain.Post{
		Title:     faker.Sentence(),
		Slug:      faker.Word(),
		Author:    domain.User{ID: 1},
		Community: domain.Community{ID: 2},
	}
	f.communities.On("GetByID", mock.Anything, int64(2)).Return(domain.Community{ID: 2}, nil)
	f.posts.On("Store", mock.Anything, p).Return(nil)

	require.NoError(t, f.svc.CreatePost(t.Context(), p))
	assert.Equal(t, domain.PostPublished, p.Status)
}

func TestCreatePostUnknownCommunity(t *testing.T) {
	f := newFixture()
	f.communities.On("GetByID", mock.Anything, int64(9)).Return(domain.Community{}, domain.ErrNotFound)

	err := f.svc.CreatePost(t.Context(), &domain.Post{
		Title: "t", Slug: "t", Author: domain.User{ID: 1}, Community: domain.Community{ID: 9},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.posts.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestCreatePostValidation(t *testing.T) {
	f := newFixture()
	assert.ErrorIs(t, f.svc.CreatePost(t.Context(), &domain.Post{Title: "t", Slug: "t"}), domain.ErrUnauthorized)
	assert.ErrorIs(t, f.svc.CreatePost(t.Context(), &domain.Post{Title: "  ", Slug: "t", Author: domain.User{ID: 1}}), domain.ErrBadParamInput)
}

func TestDeletePostOnlyByAuthor(t *testing.T) {
	f := newFixture()
	f.posts.On("GetByID", mock.Anything, int64(5)).Return(domain.Post{ID: 5, Author: domain.User{ID: 1}}, nil)
	f.posts.On("Delete", mock.Anything, int64(5)).Return(nil)

	assert.ErrorIs(t, f.svc.DeletePost(t.Context(), 2, 5), domain.ErrForbidden)
	require.NoError(t, f.svc.DeletePost(t.Context(), 1, 5))
	f.posts.AssertNumberOfCalls(t, "Delete", 1)
}

func TestVote(t *testing.T) {
	f := newFixture()
	f.posts.On("GetByID", mock.Anything, int64(5)).Return(domain.Post{ID: 5}, nil)
	f.ratings.On("Rate", mock.Anything, &domain.Rating{
		TargetType: domain.TargetPost, TargetID: 5, UserID: 1, Value: domain.Downvote,
	}).Return(nil)

	require.NoError(t, f.svc.Vote(t.Context(), 1, 5, domain.Downvote))
	assert.ErrorIs(t, f.svc.Vote(t.Context(), 1, 5, 3), domain.ErrBadParamInput)
	assert.ErrorIs(t, f.svc.Vote(t.Context(), 0, 5, domain.Upvote), domain.ErrUnauthorized)
}

func TestUnvoteMissing(t *testing.T) {
	f := newFixture()
	f.ratings.On("Unrate", mock.Anything, domain.TargetPost, int64(5), int64(1)).Return(domain.ErrNotFound)

	assert.ErrorIs(t, f.svc.Unvote(t.Context(), 1, 5), domain.ErrNotFound)
}

func TestComment(t *testing.T) {
	f := newFixture()
	c := &domain.Comment{PostID: 5, UserID: 1, Content: faker.Sentence()}
	f.comments.On("Store", mock.Anything, c).Return(nil)
	f.comments.On("Delete", mock.Anything, int64(8), int64(2)).Return(domain.Comment{}, domain.ErrForbidden)

	require.NoError(t, f.svc.Comment(t.Context(), c))
	assert.Equal(t, domain.PostPublished, c.Status)
	assert.ErrorIs(t, f.svc.Comment(t.Context(), &domain.Comment{PostID: 5, UserID: 1}), domain.ErrBadParamInput)
	assert.ErrorIs(t, f.svc.DeleteComment(t.Context(), 2, 8), domain.ErrForbidden)
}
