package domain

import (
	"context"
	"time"
)

// Role of a user inside a community
type Role string

const (
	RoleCreator   Role = "CREATOR"
	RoleModerator Role = "MODERATOR"
	RoleMember    Role = "MEMBER"
)

// Membership connects a user with a community
type Membership struct {
	UserID      int64
	CommunityID int64
	Role        Role
	JoinedAt    time.Time
}

// MembershipRepository defines the contract for membership persistence
type MembershipRepository interface {
	// Create stores the membership and increments members_count in the same transaction.
	// Returns ErrConflict if the user is already a member.
	Create(ctx context.Context, m *Membership) error

	// Delete removes the membership and decrements members_count in the same transaction.
	// Returns ErrNotFound if the user is not a member.
	Delete(ctx context.Context, userID, communityID int64) error

	// CommunityIDsOf returns communities the user joined, newest first.
	CommunityIDsOf(ctx context.Context, userID int64, limit int) ([]int64, error)

	// MemberOf reports membership of the user for each given community.
	MemberOf(ctx context.Context, userID int64, communityIDs []int64) (map[int64]bool, error)
}

// MembershipUsecase is the membership write path exposed to the API layer
type MembershipUsecase interface {
	Join(ctx context.Context, userID, communityID int64) error
	Leave(ctx context.Context, userID, communityID int64) error
}
