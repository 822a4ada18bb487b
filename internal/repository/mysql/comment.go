package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

// Store 创建评论，同一事务内 comment_count + 1
func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	row := model.NewCommentFromDomain(comment)
	err := c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Post{}).
			Where("id = ?", row.PostID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return tx.Create(row).Error
	})
	if err != nil {
		return err
	}
	comment.ID = row.ID
	comment.Status = domain.PostStatus(row.Status)
	comment.CreatedAt = row.CreatedAt
	return nil
}

// Delete 只能删除自己的评论，同一事务内 comment_count - 1
func (c *commentRepository) Delete(ctx context.Context, id int64, userID int64) (domain.Comment, error) {
	var row model.Comment
	err := c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			if notFound(err) == domain.ErrNotFound {
				return domain.ErrForbidden
			}
			return err
		}
		if err := tx.Delete(&row).Error; err != nil {
			return err
		}
		return tx.Model(&model.Post{}).
			Where("id = ?", row.PostID).
			UpdateColumn("comment_count", gorm.Expr("GREATEST(comment_count - 1, 0)")).Error
	})
	if err != nil {
		return domain.Comment{}, err
	}
	return row.ToDomain(), nil
}

var _ domain.CommentRepository = (*commentRepository)(nil)
