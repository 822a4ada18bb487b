package repository_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/domain/mocks"
	"github.com/cldprgm/Network-vibe/internal/repository"
)

func TestMembershipCreatePublishes(t *testing.T) {
	db := new(mocks.MembershipRepository)
	users := new(mocks.UserRepository)
	pub := new(mocks.EventPublisher)
	repo := repository.NewMembershipRepository(db, users, pub)

	m := &domain.Membership{UserID: 7, CommunityID: 3, Role: domain.RoleMember}
	db.On("Create", mock.Anything, m).Return(nil)
	users.On("GetByID", mock.Anything, int64(7)).Return(domain.User{ID: 7, Slug: "alice"}, nil)
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(ev domain.Event) bool {
		return ev.Kind == domain.MembershipCreated && ev.UserID == 7 && ev.UserSlug == "alice" &&
			ev.CommunityID == 3 && !ev.OccurredAt.IsZero()
	})).Return(nil).Once()

	require.NoError(t, repo.Create(t.Context(), m))
	pub.AssertExpectations(t)
}

func TestMembershipFailedWriteDoesNotPublish(t *testing.T) {
	db := new(mocks.MembershipRepository)
	pub := new(mocks.EventPublisher)
	repo := repository.NewMembershipRepository(db, new(mocks.UserRepository), pub)

	db.On("Delete", mock.Anything, int64(7), int64(3)).Return(domain.ErrNotFound)

	err := repo.Delete(t.Context(), 7, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestPublishFailureDoesNotFailWrite(t *testing.T) {
	db := new(mocks.MembershipRepository)
	users := new(mocks.UserRepository)
	pub := new(mocks.EventPublisher)
	repo := repository.NewMembershipRepository(db, users, pub)

	db.On("Delete", mock.Anything, int64(7), int64(3)).Return(nil)
	users.On("GetByID", mock.Anything, int64(7)).Return(domain.User{}, errors.New("gone"))
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(ev domain.Event) bool {
		return ev.Kind == domain.MembershipDeleted && ev.UserSlug == ""
	})).Return(errors.New("bus closed"))

	assert.NoError(t, repo.Delete(t.Context(), 7, 3))
	pub.AssertExpectations(t)
}

func TestPostStoreResolvesAuthorSlug(t *testing.T) {
	db := new(mocks.PostRepository)
	users := new(mocks.UserRepository)
	pub := new(mocks.EventPublisher)
	repo := repository.NewPostRepository(db, users, pub)

	p := &domain.Post{Title: "t", Author: domain.User{ID: 4}, Community: domain.Community{ID: 2}}
	db.On("Store", mock.Anything, p).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Post).ID = 30
	}).Return(nil)
	users.On("GetByID", mock.Anything, int64(4)).Return(domain.User{ID: 4, Slug: "bob"}, nil)
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(ev domain.Event) bool {
		return ev.Kind == domain.ContentCreated && ev.Content == domain.ContentPost &&
			ev.ContentID == 30 && ev.UserSlug == "bob"
	})).Return(nil).Once()

	require.NoError(t, repo.Store(t.Context(), p))
	pub.AssertExpectations(t)
}

func TestPostDeleteCarriesAuthor(t *testing.T) {
	db := new(mocks.PostRepository)
	pub := new(mocks.EventPublisher)
	repo := repository.NewPostRepository(db, new(mocks.UserRepository), pub)

	db.On("GetByID", mock.Anything, int64(30)).Return(domain.Post{
		ID: 30, Author: domain.User{ID: 4, Slug: "bob"}, Community: domain.Community{ID: 2},
	}, nil)
	db.On("Delete", mock.Anything, int64(30)).Return(nil)
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(ev domain.Event) bool {
		return ev.Kind == domain.ContentDeleted && ev.UserSlug == "bob" && ev.CommunityID == 2
	})).Return(nil).Once()

	require.NoError(t, repo.Delete(t.Context(), 30))
	pub.AssertExpectations(t)
}

func TestRatingSkipsSlugLookup(t *testing.T) {
	db := new(mocks.RatingRepository)
	users := new(mocks.UserRepository)
	pub := new(mocks.EventPublisher)
	repo := repository.NewRatingRepository(db, users, pub)

	r := &domain.Rating{TargetType: domain.TargetComment, TargetID: 9, UserID: 4, Value: domain.Upvote}
	db.On("Rate", mock.Anything, r).Return(nil)
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(ev domain.Event) bool {
		return ev.Kind == domain.RatingChanged && ev.Content == domain.ContentComment && ev.ContentID == 9
	})).Return(nil).Once()

	require.NoError(t, repo.Rate(t.Context(), r))
	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCommunityUpdatePublishes(t *testing.T) {
	db := new(mocks.CommunityRepository)
	pub := new(mocks.EventPublisher)
	repo := repository.NewCommunityRepository(db, new(mocks.UserRepository), pub)

	c := &domain.Community{ID: 3, Name: "Go"}
	db.On("Update", mock.Anything, c).Return(nil)
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(ev domain.Event) bool {
		return ev.Kind == domain.CommunityUpdated && ev.CommunityID == 3
	})).Return(nil).Once()

	require.NoError(t, repo.Update(t.Context(), c))
	pub.AssertExpectations(t)
}
