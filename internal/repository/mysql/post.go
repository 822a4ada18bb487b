package mysql

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/repository/mysql/model"
)

type postRepository struct {
	DB *gorm.DB
}

// mysql层只负责数据库操作
var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository 创建数据库操作层
func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{db}
}

func (m *postRepository) QueryCandidates(ctx context.Context, q domain.PostQuery) ([]domain.Candidate, error) {
	status := q.Status
	if status == "" {
		status = domain.PostPublished
	}

	tx := m.DB.WithContext(ctx).
		Model(&model.Post{}).
		Select("id, community_id, score").
		Where("status = ?", string(status))
	if !q.Since.IsZero() {
		tx = tx.Where("created_at >= ?", q.Since)
	}
	if len(q.ExcludeIDs) > 0 {
		tx = tx.Where("id NOT IN ?", q.ExcludeIDs)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var rows []model.Post
	if err := tx.Order("score desc, id desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}

	res := make([]domain.Candidate, len(rows))
	for i := range rows {
		res[i] = rows[i].ToCandidate()
	}
	return res, nil
}

func (m *postRepository) GetByID(ctx context.Context, id int64) (res domain.Post, err error) {
	var post model.Post
	err = m.DB.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		return res, notFound(err)
	}
	res = post.ToDomain()
	return
}

func (m *postRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var posts []model.Post
	err := m.DB.WithContext(ctx).
		Where("id IN ? AND status = ?", ids, string(domain.PostPublished)).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("get posts by ids: %w", err)
	}

	res := make([]domain.Post, len(posts))
	for i := range posts {
		res[i] = posts[i].ToDomain()
	}
	return res, nil
}

func (m *postRepository) IDsByAuthor(ctx context.Context, authorID int64, filter domain.PostFilter, limit int) (ids []int64, err error) {
	order := "created_at desc, id desc"
	if filter == domain.PostFilterPopular {
		order = "sum_rating desc, id desc"
	}

	tx := m.DB.WithContext(ctx).
		Model(&model.Post{}).
		Where("author_id = ? AND status = ?", authorID, string(domain.PostPublished)).
		Order(order)
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	err = tx.Pluck("id", &ids).Error
	return
}

func (m *postRepository) CommunityIDsOf(ctx context.Context, postIDs []int64) (ids []int64, err error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	err = m.DB.WithContext(ctx).
		Model(&model.Post{}).
		Distinct("community_id").
		Where("id IN ?", postIDs).
		Pluck("community_id", &ids).Error
	return
}

func (m *postRepository) FetchScoreSignals(ctx context.Context, since time.Time) ([]domain.ScoreSignal, error) {
	var rows []model.Post
	err := m.DB.WithContext(ctx).
		Model(&model.Post{}).
		Select("id, sum_rating, comment_count, created_at").
		Where("status = ? AND created_at >= ?", string(domain.PostPublished), since).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetch score signals: %w", err)
	}

	res := make([]domain.ScoreSignal, len(rows))
	for i := range rows {
		res[i] = rows[i].ToScoreSignal()
	}
	return res, nil
}

// BulkUpdateScores writes every score in one transaction, in batches of CASE updates.
// updated_at is left untouched.
func (m *postRepository) BulkUpdateScores(ctx context.Context, updates []domain.ScoreUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, b := range batches(len(updates), updateBatchSize) {
			batch := updates[b[0]:b[1]]
			ids := make([]int64, len(batch))
			for i := range batch {
				ids[i] = batch[i].ID
			}

			expr := caseExpr("score", len(batch), func(i int) (int64, any) {
				return batch[i].ID, batch[i].Score
			})
			if err := tx.Model(&model.Post{}).
				Where("id IN ?", ids).
				UpdateColumn("score", expr).Error; err != nil {
				return fmt.Errorf("update scores: %w", err)
			}
		}
		return nil
	})
}

func (m *postRepository) Store(ctx context.Context, p *domain.Post) (err error) {
	postModel := model.NewPostFromDomain(p)
	result := m.DB.WithContext(ctx).Create(postModel)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return domain.ErrConflict
		}
		return result.Error
	}
	p.ID = postModel.ID
	p.Status = domain.PostStatus(postModel.Status)
	p.Score = 0
	p.CreatedAt = postModel.CreatedAt
	p.UpdatedAt = postModel.UpdatedAt
	return
}

func (m *postRepository) Delete(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Post{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
