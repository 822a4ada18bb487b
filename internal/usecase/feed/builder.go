package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/ranking"
)

// builder produces the ordered ID lists behind the feed cache keys.
type builder struct {
	postRepo   domain.PostRepository
	ratingRepo domain.RatingRepository

	trendingWindow     time.Duration
	personalizedWindow time.Duration
	pool               int
	maxList            int
	high, low          float64
	jitter             float64
	rand               ranking.RandomSource
	now                func() time.Time
}

// trending ranks recent published posts by score alone.
func (b *builder) trending(ctx context.Context) ([]int64, error) {
	cands, err := b.postRepo.QueryCandidates(ctx, domain.PostQuery{
		Status: domain.PostPublished,
		Since:  b.now().Add(-b.trendingWindow),
		Limit:  b.pool,
	})
	if err != nil {
		return nil, fmt.Errorf("query trending candidates: %w", err)
	}
	return ranking.RankPosts(cands, nil, b.jitter, b.rand, b.maxList), nil
}

// personalized drops posts the user already up-voted and boosts posts from
// communities of those posts.
func (b *builder) personalized(ctx context.Context, userID int64) ([]int64, error) {
	liked, err := b.ratingRepo.LikedPostIDs(ctx, userID, domain.LikedPostsLimit)
	if err != nil {
		return nil, fmt.Errorf("load liked posts: %w", err)
	}

	var likedCommunities []int64
	if len(liked) > 0 {
		likedCommunities, err = b.postRepo.CommunityIDsOf(ctx, liked)
		if err != nil {
			return nil, fmt.Errorf("load liked communities: %w", err)
		}
	}

	cands, err := b.postRepo.QueryCandidates(ctx, domain.PostQuery{
		Status:     domain.PostPublished,
		Since:      b.now().Add(-b.personalizedWindow),
		ExcludeIDs: liked,
		Limit:      b.pool,
	})
	if err != nil {
		return nil, fmt.Errorf("query personalized candidates: %w", err)
	}

	aff := ranking.NewAffinity(likedCommunities, b.high, b.low)
	return ranking.RankPosts(cands, aff, b.jitter, b.rand, b.maxList), nil
}
