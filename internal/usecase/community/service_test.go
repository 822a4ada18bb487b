package community_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/domain/mocks"
	"github.com/cldprgm/Network-vibe/internal/usecase/community"
)

func stored() domain.Community {
	return domain.Community{
		ID:          3,
		Name:        "golang",
		Slug:        "golang",
		Description: "gophers",
		CreatorID:   1,
		Categories:  []domain.Category{{ID: 1}},
	}
}

func TestUpdateMergesFields(t *testing.T) {
	repo := new(mocks.CommunityRepository)
	repo.On("GetByID", mock.Anything, int64(3)).Return(stored(), nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Community) bool {
		return c.Name == "Go" && c.Slug == "golang" && c.Description == "gophers" && c.Categories == nil
	})).Return(nil)

	c := &domain.Community{ID: 3, Name: "Go"}
	require.NoError(t, community.NewService(repo).Update(t.Context(), 1, c))
	assert.Equal(t, "gophers", c.Description)
	assert.Len(t, c.Categories, 1)
}

func TestUpdateOnlyByCreator(t *testing.T) {
	repo := new(mocks.CommunityRepository)
	repo.On("GetByID", mock.Anything, int64(3)).Return(stored(), nil)

	err := community.NewService(repo).Update(t.Context(), 2, &domain.Community{ID: 3, Name: "mine"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
