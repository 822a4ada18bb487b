package mysql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/repository/mysql/model"
)

type membershipRepository struct {
	DB *gorm.DB
}

var _ domain.MembershipRepository = (*membershipRepository)(nil)

func NewMembershipRepository(db *gorm.DB) *membershipRepository {
	return &membershipRepository{db}
}

// Create 加入社区，同一事务内 members_count + 1
func (m *membershipRepository) Create(ctx context.Context, ms *domain.Membership) error {
	row := model.NewMembershipFromDomain(ms)
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Community{}).
			Where("id = ?", row.CommunityID).
			UpdateColumn("members_count", gorm.Expr("members_count + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		if err := tx.Create(row).Error; err != nil {
			if isDuplicateKey(err) {
				return domain.ErrConflict
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	ms.Role = domain.Role(row.Role)
	ms.JoinedAt = row.JoinedAt
	return nil
}

// Delete 退出社区，同一事务内 members_count - 1
func (m *membershipRepository) Delete(ctx context.Context, userID, communityID int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND community_id = ?", userID, communityID).
			Delete(&model.Membership{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		return tx.Model(&model.Community{}).
			Where("id = ?", communityID).
			UpdateColumn("members_count", gorm.Expr("GREATEST(members_count - 1, 0)")).Error
	})
}

func (m *membershipRepository) CommunityIDsOf(ctx context.Context, userID int64, limit int) (ids []int64, err error) {
	tx := m.DB.WithContext(ctx).
		Model(&model.Membership{}).
		Where("user_id = ?", userID).
		Order("joined_at desc, id desc")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	err = tx.Pluck("community_id", &ids).Error
	return
}

func (m *membershipRepository) MemberOf(ctx context.Context, userID int64, communityIDs []int64) (map[int64]bool, error) {
	res := make(map[int64]bool, len(communityIDs))
	if len(communityIDs) == 0 || userID <= 0 {
		return res, nil
	}

	var joined []int64
	err := m.DB.WithContext(ctx).
		Model(&model.Membership{}).
		Where("user_id = ? AND community_id IN ?", userID, communityIDs).
		Pluck("community_id", &joined).Error
	if err != nil {
		return nil, fmt.Errorf("membership lookup: %w", err)
	}

	for _, id := range joined {
		res[id] = true
	}
	return res, nil
}
