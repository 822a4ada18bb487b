package model

import (
	"time"

	"github.com/cldprgm/Network-vibe/domain"
)

type Rating struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	TargetType string    `gorm:"column:target_type;type:varchar(10);not null;uniqueIndex:uniq_rating,priority:1"`
	TargetID   int64     `gorm:"column:target_id;not null;uniqueIndex:uniq_rating,priority:2"`
	UserID     int64     `gorm:"column:user_id;not null;uniqueIndex:uniq_rating,priority:3;index:idx_rating_user_created,priority:1"`
	Value      int8      `gorm:"type:tinyint;not null"`
	CreatedAt  time.Time `gorm:"type:datetime;index:idx_rating_user_created,priority:2"`
}

func (Rating) TableName() string {
	return "rating"
}

func NewRatingFromDomain(r *domain.Rating) *Rating {
	return &Rating{
		TargetType: string(r.TargetType),
		TargetID:   r.TargetID,
		UserID:     r.UserID,
		Value:      r.Value,
		CreatedAt:  r.CreatedAt,
	}
}
