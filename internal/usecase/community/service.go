package community

import (
	"context"

	"github.com/cldprgm/Network-vibe/domain"
)

type Service struct {
	communityRepo domain.CommunityRepository
}

var _ domain.CommunityUsecase = (*Service)(nil)

func NewService(c domain.CommunityRepository) *Service {
	return &Service{
		communityRepo: c,
	}
}

// Update merges the given fields into the stored community. A nil Categories
// keeps the current ones, an empty slice clears them.
func (s *Service) Update(ctx context.Context, userID int64, c *domain.Community) error {
	existed, err := s.communityRepo.GetByID(ctx, c.ID)
	if err != nil {
		return err
	}
	if existed.CreatorID != userID {
		return domain.ErrForbidden
	}

	updated := existed
	if c.Name != "" {
		updated.Name = c.Name
	}
	if c.Slug != "" {
		updated.Slug = c.Slug
	}
	if c.Description != "" {
		updated.Description = c.Description
	}
	// 不修改分类时不替换关联
	updated.Categories = c.Categories

	if err := s.communityRepo.Update(ctx, &updated); err != nil {
		return err
	}
	if updated.Categories == nil {
		updated.Categories = existed.Categories
	}
	*c = updated
	return nil
}
