package content

import (
	"context"
	"strings"

	"github.com/cldprgm/Network-vibe/domain"
)

type Service struct {
	postRepo      domain.PostRepository
	commentRepo   domain.CommentRepository
	ratingRepo    domain.RatingRepository
	communityRepo domain.CommunityRepository
}

var _ domain.ContentUsecase = (*Service)(nil)

// NewService expects the publishing repositories so writes emit their events.
func NewService(p domain.PostRepository, cm domain.CommentRepository, r domain.RatingRepository, c domain.CommunityRepository) *Service {
	return &Service{
		postRepo:      p,
		commentRepo:   cm,
		ratingRepo:    r,
		communityRepo: c,
	}
}

func (s *Service) CreatePost(ctx context.Context, p *domain.Post) error {
	if p.Author.ID <= 0 {
		return domain.ErrUnauthorized
	}
	if strings.TrimSpace(p.Title) == "" || p.Slug == "" {
		return domain.ErrBadParamInput
	}
	if _, err := s.communityRepo.GetByID(ctx, p.Community.ID); err != nil {
		return err
	}
	if p.Status == "" {
		p.Status = domain.PostPublished
	}
	return s.postRepo.Store(ctx, p)
}

func (s *Service) DeletePost(ctx context.Context, userID, postID int64) error {
	existed, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if existed.Author.ID != userID {
		return domain.ErrForbidden
	}
	return s.postRepo.Delete(ctx, postID)
}

func (s *Service) Vote(ctx context.Context, userID, postID int64, value int8) error {
	if userID <= 0 {
		return domain.ErrUnauthorized
	}
	if value != domain.Upvote && value != domain.Downvote {
		return domain.ErrBadParamInput
	}
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}
	return s.ratingRepo.Rate(ctx, &domain.Rating{
		TargetType: domain.TargetPost,
		TargetID:   postID,
		UserID:     userID,
		Value:      value,
	})
}

func (s *Service) Unvote(ctx context.Context, userID, postID int64) error {
	if userID <= 0 {
		return domain.ErrUnauthorized
	}
	return s.ratingRepo.Unrate(ctx, domain.TargetPost, postID, userID)
}

func (s *Service) Comment(ctx context.Context, c *domain.Comment) error {
	if c.UserID <= 0 {
		return domain.ErrUnauthorized
	}
	if strings.TrimSpace(c.Content) == "" {
		return domain.ErrBadParamInput
	}
	if c.Status == "" {
		c.Status = domain.PostPublished
	}
	return s.commentRepo.Store(ctx, c)
}

func (s *Service) DeleteComment(ctx context.Context, userID, commentID int64) error {
	_, err := s.commentRepo.Delete(ctx, commentID, userID)
	return err
}
