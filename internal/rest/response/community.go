package response

import "github.com/cldprgm/Network-vibe/domain"

type Category struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type Community struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	Description   string     `json:"description"`
	CreatorID     int64      `json:"creator_id"`
	MembersCount  int64      `json:"members_count"`
	ActivityScore int64      `json:"activity_score"`
	Categories    []Category `json:"categories"`
	CreatedAt     string     `json:"created_at"`
	// IsMember 当前用户是否已加入，不缓存
	IsMember bool `json:"is_member"`
}

func NewCommunityFromDomain(it *domain.CommunityItem) Community {
	c := &it.Community
	cats := make([]Category, len(c.Categories))
	for i, cat := range c.Categories {
		cats[i] = Category{ID: cat.ID, Title: cat.Title, Slug: cat.Slug}
	}
	return Community{
		ID:            c.ID,
		Name:          c.Name,
		Slug:          c.Slug,
		Description:   c.Description,
		CreatorID:     c.CreatorID,
		MembersCount:  c.MembersCount,
		ActivityScore: c.ActivityScore,
		Categories:    cats,
		CreatedAt:     c.CreatedAt.Format(DateTimeFormat),
		IsMember:      it.IsMember,
	}
}

func newCommunities(items []domain.CommunityItem) []Community {
	res := make([]Community, len(items))
	for i := range items {
		res[i] = NewCommunityFromDomain(&items[i])
	}
	return res
}

type CommunityList struct {
	Results []Community `json:"results"`
	Next    *string     `json:"next"`
}

func NewCommunityListFromDomain(page *domain.CommunityPage) CommunityList {
	return CommunityList{
		Results: newCommunities(page.Items),
		Next:    nullable(page.Next),
	}
}

type Recommendations struct {
	Type            string      `json:"type"`
	Recommendations []Community `json:"recommendations"`
	Next            *string     `json:"next"`
}

func NewRecommendationsFromDomain(r *domain.CommunityRecommendations) Recommendations {
	return Recommendations{
		Type:            string(r.Type),
		Recommendations: newCommunities(r.Items),
		Next:            nullable(r.Next),
	}
}
