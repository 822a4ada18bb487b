package ranking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/ranking"
)

func TestRankPostsTrending(t *testing.T) {
	cands := []domain.Candidate{
		{ID: 1, CommunityID: 10, Score: 1.0},
		{ID: 2, CommunityID: 10, Score: 3.0},
		{ID: 3, CommunityID: 20, Score: 2.0},
		{ID: 4, CommunityID: 20, Score: 2.0},
	}

	got := ranking.RankPosts(cands, nil, 0, ranking.ZeroSource{}, 0)
	assert.Equal(t, []int64{2, 4, 3, 1}, got)
}

func TestRankPostsAffinityBoost(t *testing.T) {
	cands := []domain.Candidate{
		{ID: 1, CommunityID: 10, Score: 1.0},
		{ID: 2, CommunityID: 20, Score: 1.3},
		{ID: 3, CommunityID: 30, Score: 0.2},
	}
	aff := ranking.NewAffinity([]int64{10}, 0.6, 0.1)

	// 1 -> 1.6, 2 -> 1.4, 3 -> 0.3
	got := ranking.RankPosts(cands, aff, 0, ranking.ZeroSource{}, 0)
	assert.Equal(t, []int64{1, 2, 3}, got)
}

func TestRankPostsCap(t *testing.T) {
	cands := make([]domain.Candidate, 50)
	for i := range cands {
		cands[i] = domain.Candidate{ID: int64(i + 1), Score: float64(i)}
	}

	got := ranking.RankPosts(cands, nil, 0, nil, 10)
	assert.Len(t, got, 10)
	assert.Equal(t, int64(50), got[0])
	assert.Equal(t, int64(41), got[9])
}

func TestRankPostsJitterKeepsMembership(t *testing.T) {
	cands := []domain.Candidate{
		{ID: 1, Score: 1}, {ID: 2, Score: 1.01}, {ID: 3, Score: 5},
	}
	got := ranking.RankPosts(cands, nil, 0.5, ranking.NewRandomSource(7), 0)
	assert.ElementsMatch(t, []int64{1, 2, 3}, got)
	assert.Equal(t, int64(3), got[0])
}

func TestAffinityRelevance(t *testing.T) {
	var none *ranking.Affinity
	assert.Zero(t, none.Relevance(1))

	aff := ranking.NewAffinity([]int64{1, 2}, 0.6, 0.1)
	assert.Equal(t, 0.6, aff.Relevance(2))
	assert.Equal(t, 0.1, aff.Relevance(3))
}
