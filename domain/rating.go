package domain

import (
	"context"
	"time"
)

// TargetType is the kind of object a rating points to
type TargetType string

const (
	TargetPost    TargetType = "post"
	TargetComment TargetType = "comment"
)

const (
	Upvote   int8 = 1
	Downvote int8 = -1
)

// LikedPostsLimit bounds how many recent upvotes feed the personalized builder
const LikedPostsLimit = 30

// Rating is a signed vote of a user on a post or comment
type Rating struct {
	TargetType TargetType
	TargetID   int64
	UserID     int64
	Value      int8
	CreatedAt  time.Time
}

// RatingRepository defines the contract for rating persistence
type RatingRepository interface {
	// LikedPostIDs returns post IDs the user up-voted, newest first.
	LikedPostIDs(ctx context.Context, userID int64, limit int) ([]int64, error)

	// VotesOf returns the user's vote for each post; posts without a vote are absent.
	VotesOf(ctx context.Context, userID int64, postIDs []int64) (map[int64]int8, error)

	// Rate creates or replaces the rating and recomputes the target's sum_rating.
	Rate(ctx context.Context, r *Rating) error

	// Unrate removes the rating and recomputes the target's sum_rating.
	// Returns ErrNotFound if there is no rating.
	Unrate(ctx context.Context, target TargetType, targetID, userID int64) error
}
