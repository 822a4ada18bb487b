package request

import "github.com/cldprgm/Network-vibe/domain"

type Comment struct {
	Content string `json:"content" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain(postID, userID int64) domain.Comment {
	return domain.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: r.Content,
	}
}
