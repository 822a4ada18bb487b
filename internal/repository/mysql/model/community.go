package model

import (
	"time"

	"github.com/cldprgm/Network-vibe/domain"
)

type Category struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Title string `gorm:"type:varchar(100);not null"`
	Slug  string `gorm:"type:varchar(100);uniqueIndex;not null"`
}

func (Category) TableName() string {
	return "category"
}

func (m *Category) ToDomain() domain.Category {
	return domain.Category{
		ID:    m.ID,
		Title: m.Title,
		Slug:  m.Slug,
	}
}

// CommunityCategoriesTable is the join table of the communities/categories m2m
const CommunityCategoriesTable = "community_categories"

type Community struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	Name          string     `gorm:"type:varchar(21);uniqueIndex;not null"`
	Slug          string     `gorm:"type:varchar(100);index;not null"`
	Description   string     `gorm:"type:text"`
	CreatorID     int64      `gorm:"column:creator_id"`
	MembersCount  int64      `gorm:"default:0;index"`
	ActivityScore int64      `gorm:"default:0;index"`
	Categories    []Category `gorm:"many2many:community_categories;"`
	CreatedAt     time.Time  `gorm:"type:datetime"`
	UpdatedAt     time.Time  `gorm:"type:datetime"`
}

func (Community) TableName() string {
	return "community"
}

func (m *Community) ToDomain() domain.Community {
	cats := make([]domain.Category, len(m.Categories))
	for i := range m.Categories {
		cats[i] = m.Categories[i].ToDomain()
	}
	return domain.Community{
		ID:            m.ID,
		Name:          m.Name,
		Slug:          m.Slug,
		Description:   m.Description,
		CreatorID:     m.CreatorID,
		MembersCount:  m.MembersCount,
		ActivityScore: m.ActivityScore,
		Categories:    cats,
		CreatedAt:     m.CreatedAt,
	}
}

// NewCommunityFromDomain ignores the counters, which are maintained by the write path and score job.
func NewCommunityFromDomain(c *domain.Community) *Community {
	cats := make([]Category, len(c.Categories))
	for i, cat := range c.Categories {
		cats[i] = Category{ID: cat.ID, Title: cat.Title, Slug: cat.Slug}
	}
	return &Community{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatorID:   c.CreatorID,
		Categories:  cats,
		CreatedAt:   c.CreatedAt,
	}
}
