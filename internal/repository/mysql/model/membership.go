package model

import (
	"time"

	"github.com/cldprgm/Network-vibe/domain"
)

type Membership struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UserID      int64     `gorm:"column:user_id;not null;uniqueIndex:uniq_membership,priority:1"`
	CommunityID int64     `gorm:"column:community_id;not null;uniqueIndex:uniq_membership,priority:2;index:idx_membership_community_role,priority:1"`
	Role        string    `gorm:"type:varchar(10);not null;default:'MEMBER';index:idx_membership_community_role,priority:2"`
	JoinedAt    time.Time `gorm:"type:datetime;autoCreateTime"`
}

func (Membership) TableName() string {
	return "membership"
}

func (m *Membership) ToDomain() domain.Membership {
	return domain.Membership{
		UserID:      m.UserID,
		CommunityID: m.CommunityID,
		Role:        domain.Role(m.Role),
		JoinedAt:    m.JoinedAt,
	}
}

func NewMembershipFromDomain(m *domain.Membership) *Membership {
	role := m.Role
	if role == "" {
		role = domain.RoleMember
	}
	return &Membership{
		UserID:      m.UserID,
		CommunityID: m.CommunityID,
		Role:        string(role),
		JoinedAt:    m.JoinedAt,
	}
}
