package model

import (
	"time"

	"github.com/cldprgm/Network-vibe/domain"
)

type Post struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Title        string    `gorm:"type:varchar(300);not null"`
	Slug         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description  string    `gorm:"type:longtext"`
	Status       string    `gorm:"type:char(2);not null;default:'DF';index:idx_post_status_created,priority:1"`
	AuthorID     int64     `gorm:"column:author_id;not null;index"`
	CommunityID  int64     `gorm:"column:community_id;not null;index"`
	SumRating    int64     `gorm:"default:0"`
	CommentCount int64     `gorm:"default:0"`
	Score        float64   `gorm:"default:0;index"`
	CreatedAt    time.Time `gorm:"type:datetime;index:idx_post_status_created,priority:2"`
	UpdatedAt    time.Time `gorm:"type:datetime"`
}

func (Post) TableName() string {
	return "post"
}

func (m *Post) ToDomain() domain.Post {
	return domain.Post{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Description: m.Description,
		Status:      domain.PostStatus(m.Status),
		Author: domain.User{
			ID: m.AuthorID,
		},
		Community: domain.Community{
			ID: m.CommunityID,
		},
		SumRating:    m.SumRating,
		CommentCount: m.CommentCount,
		Score:        m.Score,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (m *Post) ToCandidate() domain.Candidate {
	return domain.Candidate{
		ID:          m.ID,
		CommunityID: m.CommunityID,
		Score:       m.Score,
	}
}

func (m *Post) ToScoreSignal() domain.ScoreSignal {
	return domain.ScoreSignal{
		ID:           m.ID,
		SumRating:    m.SumRating,
		CommentCount: m.CommentCount,
		CreatedAt:    m.CreatedAt,
	}
}

// NewPostFromDomain ignores p.Score, which only the score job writes.
func NewPostFromDomain(p *domain.Post) *Post {
	status := p.Status
	if status == "" {
		status = domain.PostDraft
	}
	return &Post{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Description:  p.Description,
		Status:       string(status),
		AuthorID:     p.Author.ID,
		CommunityID:  p.Community.ID,
		SumRating:    p.SumRating,
		CommentCount: p.CommentCount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
