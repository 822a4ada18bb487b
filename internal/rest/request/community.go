package request

import "github.com/cldprgm/Network-vibe/domain"

// Community is a partial update, empty fields are left unchanged.
// CategoryIDs replaces the categories when present, [] clears them.
type Community struct {
	Name        string   `json:"name" binding:"omitempty,max=100"`
	Slug        string   `json:"slug" binding:"omitempty,max=100"`
	Description string   `json:"description"`
	CategoryIDs *[]int64 `json:"category_ids" binding:"omitempty,dive,gt=0"`
}

func (r *Community) ToDomain(id int64) domain.Community {
	c := domain.Community{
		ID:          id,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
	}
	if r.CategoryIDs != nil {
		c.Categories = make([]domain.Category, 0, len(*r.CategoryIDs))
		for _, id := range *r.CategoryIDs {
			c.Categories = append(c.Categories, domain.Category{ID: id})
		}
	}
	return c
}
