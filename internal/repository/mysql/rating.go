package mysql

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/repository/mysql/model"
)

type ratingRepository struct {
	DB *gorm.DB
}

var _ domain.RatingRepository = (*ratingRepository)(nil)

func NewRatingRepository(db *gorm.DB) *ratingRepository {
	return &ratingRepository{db}
}

func (m *ratingRepository) LikedPostIDs(ctx context.Context, userID int64, limit int) (ids []int64, err error) {
	tx := m.DB.WithContext(ctx).
		Model(&model.Rating{}).
		Where("target_type = ? AND user_id = ? AND value = ?", string(domain.TargetPost), userID, domain.Upvote).
		Order("created_at desc, id desc")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	err = tx.Pluck("target_id", &ids).Error
	return
}

func (m *ratingRepository) VotesOf(ctx context.Context, userID int64, postIDs []int64) (map[int64]int8, error) {
	res := make(map[int64]int8, len(postIDs))
	if len(postIDs) == 0 || userID <= 0 {
		return res, nil
	}

	var rows []model.Rating
	err := m.DB.WithContext(ctx).
		Select("target_id, value").
		Where("target_type = ? AND user_id = ? AND target_id IN ?", string(domain.TargetPost), userID, postIDs).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("votes lookup: %w", err)
	}

	for _, r := range rows {
		res[r.TargetID] = r.Value
	}
	return res, nil
}

// Rate 创建或覆盖评分，并在同一事务内重新汇总 sum_rating
func (m *ratingRepository) Rate(ctx context.Context, r *domain.Rating) error {
	if r.Value != domain.Upvote && r.Value != domain.Downvote {
		return domain.ErrBadParamInput
	}

	row := model.NewRatingFromDomain(r)
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "target_type"}, {Name: "target_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).Create(row).Error
		if err != nil {
			return err
		}
		return recomputeSumRating(tx, r.TargetType, r.TargetID)
	})
}

func (m *ratingRepository) Unrate(ctx context.Context, target domain.TargetType, targetID, userID int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("target_type = ? AND target_id = ? AND user_id = ?", string(target), targetID, userID).
			Delete(&model.Rating{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return recomputeSumRating(tx, target, targetID)
	})
}

// recomputeSumRating only tracks posts; comments carry no aggregate.
func recomputeSumRating(tx *gorm.DB, target domain.TargetType, targetID int64) error {
	if target != domain.TargetPost {
		return nil
	}

	var sum int64
	err := tx.Model(&model.Rating{}).
		Select("COALESCE(SUM(value), 0)").
		Where("target_type = ? AND target_id = ?", string(domain.TargetPost), targetID).
		Scan(&sum).Error
	if err != nil {
		return err
	}

	return tx.Model(&model.Post{}).
		Where("id = ?", targetID).
		UpdateColumn("sum_rating", sum).Error
}
