package model

import (
	"time"

	"github.com/cldprgm/Network-vibe/domain"
)

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Username  string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	Slug      string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "user"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:        m.ID,
		Username:  m.Username,
		Slug:      m.Slug,
		CreatedAt: m.CreatedAt,
	}
}
