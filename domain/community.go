package domain

import (
	"context"
	"time"
)

// Category groups communities by topic
type Category struct {
	ID    int64
	Title string
	Slug  string
}

// Community is representing a community that posts belong to
type Community struct {
	ID            int64
	Name          string
	Slug          string
	Description   string
	CreatorID     int64
	MembersCount  int64
	ActivityScore int64 // posts created in the recent activity window
	Categories    []Category
	CreatedAt     time.Time
}

// CommunityOrder is the sort order of a community query
type CommunityOrder int

const (
	// OrderByActivity sorts by activity_score desc, members_count desc, id desc
	OrderByActivity CommunityOrder = iota
	// OrderByMembers sorts by members_count desc, id desc
	OrderByMembers
)

// CommunityQuery filters communities for recommendation lists.
type CommunityQuery struct {
	CategoryIDs []int64 // when set, keep communities sharing at least one category
	ExcludeIDs  []int64
	Order       CommunityOrder
	Limit       int
}

// CommunityRepository defines the contract for community data persistence
type CommunityRepository interface {
	// QueryIDs returns community IDs matching q in the requested order.
	QueryIDs(ctx context.Context, q CommunityQuery) ([]int64, error)

	// GetByID retrieves a community with its categories.
	// Returns ErrNotFound if the community doesn't exist.
	GetByID(ctx context.Context, id int64) (Community, error)

	// GetByIDs retrieves communities by given IDs in unspecified order.
	GetByIDs(ctx context.Context, ids []int64) ([]Community, error)

	// CategoryIDsOf returns distinct category IDs attached to the given communities.
	CategoryIDsOf(ctx context.Context, communityIDs []int64) ([]int64, error)

	// CountRecentPosts counts posts per community created since the given time.
	CountRecentPosts(ctx context.Context, since time.Time) (map[int64]int64, error)

	// ApplyActivityScores sets activity_score from counts and zeroes every other
	// community with a nonzero score, in one transaction. Returns rows touched.
	ApplyActivityScores(ctx context.Context, counts map[int64]int64) (int64, error)

	// Update modifies community details (name, description, categories).
	Update(ctx context.Context, c *Community) error
}

// CommunityUsecase edits community details
type CommunityUsecase interface {
	// Update applies the non-empty fields of c. Only the creator may edit.
	Update(ctx context.Context, userID int64, c *Community) error
}
