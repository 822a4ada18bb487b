package ranking

import (
	"sort"

	"github.com/cldprgm/Network-vibe/domain"
)

// Affinity is the categorical community boost of a personalized feed.
type Affinity struct {
	Communities map[int64]struct{}
	High        float64 // boost for liked communities
	Low         float64 // boost for every other community
}

// NewAffinity builds an affinity over the given liked communities.
func NewAffinity(communityIDs []int64, high, low float64) *Affinity {
	set := make(map[int64]struct{}, len(communityIDs))
	for _, id := range communityIDs {
		set[id] = struct{}{}
	}
	return &Affinity{Communities: set, High: high, Low: low}
}

// Relevance returns the boost for a post of the given community.
func (a *Affinity) Relevance(communityID int64) float64 {
	if a == nil {
		return 0
	}
	if _, ok := a.Communities[communityID]; ok {
		return a.High
	}
	return a.Low
}

type ranked struct {
	id    int64
	score float64
}

// RankPosts orders candidates by score + community relevance + jitter, descending,
// ties broken by id desc, and returns at most limit IDs. A nil affinity ranks by
// score alone (trending).
func RankPosts(cands []domain.Candidate, aff *Affinity, jitterMax float64, src RandomSource, limit int) []int64 {
	items := make([]ranked, len(cands))
	for i, c := range cands {
		items[i] = ranked{
			id:    c.ID,
			score: c.Score + aff.Relevance(c.CommunityID) + Jitter(src, jitterMax),
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].score != items[j].score {
			return items[i].score > items[j].score
		}
		return items[i].id > items[j].id
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	ids := make([]int64, len(items))
	for i := range items {
		ids[i] = items[i].id
	}
	return ids
}
