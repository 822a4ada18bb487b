package domain

import (
	"context"
	"time"
)

// Comment domain model
type Comment struct {
	ID        int64      `json:"id"`
	PostID    int64      `json:"post_id"`
	UserID    int64      `json:"user_id"`
	Content   string     `json:"content"`
	Status    PostStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	// Store creates the comment and increments the post's comment_count.
	Store(ctx context.Context, c *Comment) error
	// Delete removes the comment owned by userID and decrements comment_count.
	// Returns ErrForbidden if no such comment belongs to the user.
	Delete(ctx context.Context, id int64, userID int64) (Comment, error)
}
