package domain

import "context"

// ContentUsecase is the post, comment and vote write path exposed to the API layer.
// Every successful write is followed by the matching domain event.
type ContentUsecase interface {
	CreatePost(ctx context.Context, p *Post) error
	// DeletePost returns ErrForbidden unless userID is the author.
	DeletePost(ctx context.Context, userID, postID int64) error
	Vote(ctx context.Context, userID, postID int64, value int8) error
	Unvote(ctx context.Context, userID, postID int64) error
	Comment(ctx context.Context, c *Comment) error
	DeleteComment(ctx context.Context, userID, commentID int64) error
}
