package domain

import (
	"context"
	"time"
)

// PostStatus is the publication status of a post
type PostStatus string

const (
	PostDraft     PostStatus = "DF"
	PostPublished PostStatus = "PB"
)

// Post is representing the content item served by feeds
type Post struct {
	ID           int64      // Unique identifier
	Title        string     // Post title
	Slug         string     // URL slug
	Description  string     // Post body
	Status       PostStatus // Publication status
	Author       User       // Author information
	Community    Community  // Owning community, only identity fields are filled
	SumRating    int64      // Sum of all +1/-1 ratings
	CommentCount int64      // Number of comments
	Score        float64    // Relevance score, written only by the score job
	CreatedAt    time.Time  // Creation timestamp
	UpdatedAt    time.Time  // Last update timestamp
}

// Candidate is a post considered by the candidate set builder before ranking.
type Candidate struct {
	ID          int64
	CommunityID int64
	Score       float64
}

// PostQuery filters the candidate pool. Results are ordered by score desc, id desc.
type PostQuery struct {
	Status     PostStatus
	Since      time.Time // only posts created at or after Since
	ExcludeIDs []int64
	Limit      int
}

// ScoreSignal holds the raw inputs of the post score formula.
type ScoreSignal struct {
	ID           int64
	SumRating    int64
	CommentCount int64
	CreatedAt    time.Time
}

// ScoreUpdate is a computed score waiting to be written back.
type ScoreUpdate struct {
	ID    int64
	Score float64
}

// PostFilter selects the ordering of an author's post list.
type PostFilter string

const (
	PostFilterNone    PostFilter = "None"
	PostFilterPopular PostFilter = "popular"
	PostFilterNew     PostFilter = "new"
)

// ParsePostFilter maps a query value to a filter; unknown values map to PostFilterNone.
func ParsePostFilter(s string) PostFilter {
	switch PostFilter(s) {
	case PostFilterPopular:
		return PostFilterPopular
	case PostFilterNew:
		return PostFilterNew
	default:
		return PostFilterNone
	}
}

// AllPostFilters lists every filter variant, used to build cache keys.
var AllPostFilters = []PostFilter{PostFilterPopular, PostFilterNew, PostFilterNone}

// PostRepository defines the contract for post data persistence
type PostRepository interface {
	// QueryCandidates returns candidate posts matching q, ordered by score desc then id desc.
	QueryCandidates(ctx context.Context, q PostQuery) ([]Candidate, error)

	// GetByID retrieves a single post by its ID.
	// Returns ErrNotFound if the post doesn't exist.
	GetByID(ctx context.Context, id int64) (Post, error)

	// GetByIDs retrieves published posts by given IDs.
	// The order of the result is not specified and missing posts are skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]Post, error)

	// IDsByAuthor returns published post IDs of an author ordered by filter.
	IDsByAuthor(ctx context.Context, authorID int64, filter PostFilter, limit int) ([]int64, error)

	// CommunityIDsOf returns the distinct community IDs of the given posts.
	CommunityIDsOf(ctx context.Context, postIDs []int64) ([]int64, error)

	// FetchScoreSignals returns score inputs of published posts created since the given time.
	FetchScoreSignals(ctx context.Context, since time.Time) ([]ScoreSignal, error)

	// BulkUpdateScores writes all scores in a single transaction. Nothing is applied on error.
	BulkUpdateScores(ctx context.Context, updates []ScoreUpdate) error

	// Store creates a new post. Score always starts at 0.
	Store(ctx context.Context, p *Post) error

	// Delete removes a post by its ID.
	// Returns ErrNotFound if not exists
	Delete(ctx context.Context, id int64) error
}
