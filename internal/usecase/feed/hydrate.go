package feed

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cldprgm/Network-vibe/domain"
)

// Hydrator loads posts for an ordered ID page and joins the viewer's votes.
// It is shared by every post list endpoint.
type Hydrator struct {
	postRepo      domain.PostRepository
	userRepo      domain.UserRepository
	communityRepo domain.CommunityRepository
	ratingRepo    domain.RatingRepository
}

func NewHydrator(p domain.PostRepository, u domain.UserRepository, c domain.CommunityRepository, r domain.RatingRepository) *Hydrator {
	return &Hydrator{
		postRepo:      p,
		userRepo:      u,
		communityRepo: c,
		ratingRepo:    r,
	}
}

// Posts returns the published posts of ids in the order of ids, with author
// and community filled. Posts that disappeared from the store are skipped.
func (h *Hydrator) Posts(ctx context.Context, ids []int64) ([]domain.Post, error) {
	if len(ids) == 0 {
		return []domain.Post{}, nil
	}
	found, err := h.postRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}

	byID := make(map[int64]domain.Post, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	// 数据库返回顺序不可信，按列表顺序重排
	res := make([]domain.Post, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			res = append(res, p)
		}
	}

	if err := h.fillDetails(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (h *Hydrator) fillDetails(ctx context.Context, posts []domain.Post) error {
	userIDs := make([]int64, 0, len(posts))
	communityIDs := make([]int64, 0, len(posts))
	seenUser := map[int64]struct{}{}
	seenCommunity := map[int64]struct{}{}
	for _, p := range posts {
		if _, ok := seenUser[p.Author.ID]; !ok {
			seenUser[p.Author.ID] = struct{}{}
			userIDs = append(userIDs, p.Author.ID)
		}
		if _, ok := seenCommunity[p.Community.ID]; !ok {
			seenCommunity[p.Community.ID] = struct{}{}
			communityIDs = append(communityIDs, p.Community.ID)
		}
	}

	var (
		users       []domain.User
		communities []domain.Community
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = h.userRepo.GetByIDs(gctx, userIDs)
		return err
	})
	g.Go(func() (err error) {
		communities, err = h.communityRepo.GetByIDs(gctx, communityIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load post details: %w", err)
	}

	mapUsers := make(map[int64]domain.User, len(users))
	for _, u := range users {
		mapUsers[u.ID] = u
	}
	mapCommunities := make(map[int64]domain.Community, len(communities))
	for _, c := range communities {
		mapCommunities[c.ID] = domain.Community{ID: c.ID, Name: c.Name, Slug: c.Slug}
	}
	for i := range posts {
		if u, ok := mapUsers[posts[i].Author.ID]; ok {
			posts[i].Author = u
		}
		if c, ok := mapCommunities[posts[i].Community.ID]; ok {
			posts[i].Community = c
		}
	}
	return nil
}

// Votes joins the viewer's own vote to every post. Anonymous viewers get zero votes.
func (h *Hydrator) Votes(ctx context.Context, viewer domain.Viewer, posts []domain.Post) ([]domain.FeedItem, error) {
	items := make([]domain.FeedItem, len(posts))
	for i, p := range posts {
		items[i] = domain.FeedItem{Post: p}
	}
	if !viewer.IsAuthenticated() || len(posts) == 0 {
		return items, nil
	}

	ids := make([]int64, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	votes, err := h.ratingRepo.VotesOf(ctx, viewer.UserID, ids)
	if err != nil {
		return nil, fmt.Errorf("load votes: %w", err)
	}
	for i := range items {
		items[i].UserVote = votes[items[i].Post.ID]
	}
	return items, nil
}

// Items hydrates the page and joins votes. The two lookups run concurrently.
func (h *Hydrator) Items(ctx context.Context, viewer domain.Viewer, ids []int64) ([]domain.FeedItem, error) {
	if len(ids) == 0 {
		return []domain.FeedItem{}, nil
	}

	var (
		posts []domain.Post
		votes map[int64]int8
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		posts, err = h.Posts(gctx, ids)
		return err
	})
	if viewer.IsAuthenticated() {
		g.Go(func() (err error) {
			votes, err = h.ratingRepo.VotesOf(gctx, viewer.UserID, ids)
			if err != nil {
				return fmt.Errorf("load votes: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]domain.FeedItem, len(posts))
	for i, p := range posts {
		items[i] = domain.FeedItem{Post: p, UserVote: votes[p.ID]}
	}
	return items, nil
}
