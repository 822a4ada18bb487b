package response

import "github.com/cldprgm/Network-vibe/domain"

type CommunityRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Post struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	Slug         string       `json:"slug"`
	Description  string       `json:"description"`
	Status       string       `json:"status"`
	Author       User         `json:"author"`
	Community    CommunityRef `json:"community"`
	SumRating    int64        `json:"sum_rating"`
	CommentCount int64        `json:"comment_count"`
	CreatedAt    string       `json:"created_at"`
	UpdatedAt    string       `json:"updated_at"`
	// UserVote 当前用户的投票 -1/0/1，不缓存
	UserVote int8 `json:"user_vote"`
}

// NewPostFromDomain: Domain -> Response
func NewPostFromDomain(it *domain.FeedItem) Post {
	p := &it.Post
	return Post{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Status:      string(p.Status),
		Author:      NewUserFromDomain(p.Author),
		Community: CommunityRef{
			ID:   p.Community.ID,
			Name: p.Community.Name,
			Slug: p.Community.Slug,
		},
		SumRating:    p.SumRating,
		CommentCount: p.CommentCount,
		CreatedAt:    p.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:    p.UpdatedAt.Format(DateTimeFormat),
		UserVote:     it.UserVote,
	}
}

type PostList struct {
	Results    []Post  `json:"results"`
	NextCursor *string `json:"next_cursor"`
}

func NewPostListFromDomain(page *domain.FeedPage) PostList {
	res := make([]Post, len(page.Items))
	for i := range page.Items {
		res[i] = NewPostFromDomain(&page.Items[i])
	}
	return PostList{
		Results:    res,
		NextCursor: nullable(page.NextCursor),
	}
}
