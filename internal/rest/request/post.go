package request

import "github.com/cldprgm/Network-vibe/domain"

type Post struct {
	Title       string `json:"title" binding:"required,max=255"`
	Slug        string `json:"slug" binding:"required,max=255"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=DF PB"`
	CommunityID int64  `json:"community_id" binding:"required,gt=0"`
}

// ToDomain: Request -> Domain, the author comes from the token
func (r *Post) ToDomain(authorID int64) domain.Post {
	return domain.Post{
		Title:       r.Title,
		Slug:        r.Slug,
		Description: r.Description,
		Status:      domain.PostStatus(r.Status),
		Author:      domain.User{ID: authorID},
		Community:   domain.Community{ID: r.CommunityID},
	}
}
