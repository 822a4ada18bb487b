package mysql

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/repository/mysql/model"
)

type communityRepository struct {
	DB *gorm.DB
}

var _ domain.CommunityRepository = (*communityRepository)(nil)

func NewCommunityRepository(db *gorm.DB) *communityRepository {
	return &communityRepository{db}
}

var communityOrders = map[domain.CommunityOrder]string{
	domain.OrderByActivity: "activity_score desc, members_count desc, id desc",
	domain.OrderByMembers:  "members_count desc, id desc",
}

func (m *communityRepository) QueryIDs(ctx context.Context, q domain.CommunityQuery) (ids []int64, err error) {
	order, ok := communityOrders[q.Order]
	if !ok {
		return nil, domain.ErrBadParamInput
	}

	db := m.DB.WithContext(ctx)
	tx := db.Model(&model.Community{})
	if len(q.CategoryIDs) > 0 {
		shared := db.Table(model.CommunityCategoriesTable).
			Select("community_id").
			Where("category_id IN ?", q.CategoryIDs)
		tx = tx.Where("id IN (?)", shared)
	}
	if len(q.ExcludeIDs) > 0 {
		tx = tx.Where("id NOT IN ?", q.ExcludeIDs)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	err = tx.Order(order).Pluck("id", &ids).Error
	return
}

func (m *communityRepository) GetByID(ctx context.Context, id int64) (domain.Community, error) {
	var c model.Community
	err := m.DB.WithContext(ctx).Preload("Categories").First(&c, "id = ?", id).Error
	if err != nil {
		return domain.Community{}, notFound(err)
	}
	return c.ToDomain(), nil
}

func (m *communityRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Community, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []model.Community
	err := m.DB.WithContext(ctx).
		Preload("Categories").
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("get communities by ids: %w", err)
	}

	res := make([]domain.Community, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (m *communityRepository) CategoryIDsOf(ctx context.Context, communityIDs []int64) (ids []int64, err error) {
	if len(communityIDs) == 0 {
		return nil, nil
	}
	err = m.DB.WithContext(ctx).
		Table(model.CommunityCategoriesTable).
		Distinct("category_id").
		Where("community_id IN ?", communityIDs).
		Pluck("category_id", &ids).Error
	return
}

type communityPostCount struct {
	CommunityID int64
	Count       int64
}

// CountRecentPosts counts posts of any status, matching how activity is defined.
func (m *communityRepository) CountRecentPosts(ctx context.Context, since time.Time) (map[int64]int64, error) {
	var rows []communityPostCount
	err := m.DB.WithContext(ctx).
		Model(&model.Post{}).
		Select("community_id, COUNT(id) AS count").
		Where("created_at >= ?", since).
		Group("community_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count recent posts: %w", err)
	}

	res := make(map[int64]int64, len(rows))
	for _, r := range rows {
		res[r.CommunityID] = r.Count
	}
	return res, nil
}

func (m *communityRepository) ApplyActivityScores(ctx context.Context, counts map[int64]int64) (int64, error) {
	ids := make([]int64, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}

	var touched int64
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, b := range batches(len(ids), updateBatchSize) {
			batch := ids[b[0]:b[1]]
			expr := caseExpr("activity_score", len(batch), func(i int) (int64, any) {
				return batch[i], counts[batch[i]]
			})
			result := tx.Model(&model.Community{}).
				Where("id IN ?", batch).
				UpdateColumn("activity_score", expr)
			if result.Error != nil {
				return fmt.Errorf("set activity scores: %w", result.Error)
			}
			touched += result.RowsAffected
		}

		// 不再活跃的社区清零
		stale := tx.Model(&model.Community{}).Where("activity_score > 0")
		if len(ids) > 0 {
			stale = stale.Where("id NOT IN ?", ids)
		}
		result := stale.UpdateColumn("activity_score", 0)
		if result.Error != nil {
			return fmt.Errorf("reset stale activity scores: %w", result.Error)
		}
		touched += result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return touched, nil
}

func (m *communityRepository) Update(ctx context.Context, c *domain.Community) error {
	cm := model.NewCommunityFromDomain(c)
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Community{ID: cm.ID}).Updates(map[string]any{
			"name":        cm.Name,
			"slug":        cm.Slug,
			"description": cm.Description,
		})
		if result.Error != nil {
			if isDuplicateKey(result.Error) {
				return domain.ErrConflict
			}
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		if c.Categories != nil {
			if err := tx.Model(&model.Community{ID: cm.ID}).Association("Categories").Replace(cm.Categories); err != nil {
				return fmt.Errorf("replace categories: %w", err)
			}
		}
		return nil
	})
}
