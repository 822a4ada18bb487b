package domain

import "context"

// Viewer is the identity a list is built for. Zero UserID means anonymous.
type Viewer struct {
	UserID    int64
	SessionID string
}

func (v Viewer) IsAuthenticated() bool {
	return v.UserID > 0
}

// FeedItem is a hydrated post plus the viewer's own vote, which is never cached.
type FeedItem struct {
	Post     Post
	UserVote int8
}

// FeedPage is one page of a ranked post list. Empty NextCursor means no more pages.
type FeedPage struct {
	Items      []FeedItem
	NextCursor string
}

// RecommendationType tells which branch produced a community recommendation list
type RecommendationType string

const (
	UnauthenticatedRecommendations RecommendationType = "unauthenticated_recommendations"
	JustPopularCommunities         RecommendationType = "just_popular_communities"
	RecommendedCommunities         RecommendationType = "recommended_communities"
)

// CommunityItem is a community plus the viewer's membership flag, which is never cached.
type CommunityItem struct {
	Community Community
	IsMember  bool
}

// CommunityPage is one page of a community list
type CommunityPage struct {
	Items []CommunityItem
	Next  string
}

// CommunityRecommendations is the community recommendation envelope
type CommunityRecommendations struct {
	Type RecommendationType
	CommunityPage
}

type FeedUsecase interface {
	// Fetch returns a page of the viewer's feed. A cursor that is unknown or
	// malformed yields an empty page, not an error.
	Fetch(ctx context.Context, viewer Viewer, cursor string, pageSize int) (FeedPage, error)
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, viewer Viewer, cursor string) (CommunityRecommendations, error)
}

type ProfileUsecase interface {
	// UserPosts lists an author's posts. Returns ErrNotFound for an unknown slug.
	UserPosts(ctx context.Context, viewer Viewer, slug string, filter PostFilter, cursor string) (FeedPage, error)
	// UserCommunities lists communities a user joined. Returns ErrNotFound for an unknown slug.
	UserCommunities(ctx context.Context, viewer Viewer, slug string, cursor string) (CommunityPage, error)
}
