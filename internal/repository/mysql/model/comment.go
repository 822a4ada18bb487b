package model

import (
	"time"

	"github.com/cldprgm/Network-vibe/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	PostID    int64     `gorm:"column:post_id;not null;index:idx_comment_post_created,priority:1"`
	UserID    int64     `gorm:"column:user_id;not null"`
	Content   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:char(2);not null;default:'PB'"`
	CreatedAt time.Time `gorm:"type:datetime;index:idx_comment_post_created,priority:2"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	status := c.Status
	if status == "" {
		status = domain.PostPublished
	}
	return &Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Content:   c.Content,
		Status:    string(status),
		CreatedAt: c.CreatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		Content:   m.Content,
		Status:    domain.PostStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}
