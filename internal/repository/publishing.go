package repository

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cldprgm/Network-vibe/domain"
)

// Write path decorators. Each one delegates to the store and, only after the
// mutation succeeded, publishes the matching domain event. A failed publish is
// logged and never fails the write, which has already been committed.

type publisher struct {
	users  domain.UserRepository
	events domain.EventPublisher
}

func (p publisher) publish(ctx context.Context, ev domain.Event) {
	// rating events only feed the next score run and need no slug
	if ev.UserSlug == "" && ev.UserID > 0 && ev.Kind != domain.RatingChanged {
		u, err := p.users.GetByID(ctx, ev.UserID)
		if err != nil {
			logrus.Warnf("resolve slug of user %d for %s: %v", ev.UserID, ev.Kind, err)
		} else {
			ev.UserSlug = u.Slug
		}
	}
	ev.OccurredAt = time.Now()
	if err := p.events.Publish(ctx, ev); err != nil {
		logrus.Errorf("publish %s failed: %v", ev.Kind, err)
	}
}

// membershipRepository 发布成员变更事件
type membershipRepository struct {
	domain.MembershipRepository
	publisher
}

var _ domain.MembershipRepository = (*membershipRepository)(nil)

func NewMembershipRepository(db domain.MembershipRepository, users domain.UserRepository, events domain.EventPublisher) *membershipRepository {
	return &membershipRepository{
		MembershipRepository: db,
		publisher:            publisher{users: users, events: events},
	}
}

func (r *membershipRepository) Create(ctx context.Context, m *domain.Membership) error {
	if err := r.MembershipRepository.Create(ctx, m); err != nil {
		return err
	}
	r.publish(ctx, domain.Event{
		Kind:        domain.MembershipCreated,
		UserID:      m.UserID,
		CommunityID: m.CommunityID,
	})
	return nil
}

func (r *membershipRepository) Delete(ctx context.Context, userID, communityID int64) error {
	if err := r.MembershipRepository.Delete(ctx, userID, communityID); err != nil {
		return err
	}
	r.publish(ctx, domain.Event{
		Kind:        domain.MembershipDeleted,
		UserID:      userID,
		CommunityID: communityID,
	})
	return nil
}

// postRepository 发布帖子变更事件
type postRepository struct {
	domain.PostRepository
	publisher
}

var _ domain.PostRepository = (*postRepository)(nil)

func NewPostRepository(db domain.PostRepository, users domain.UserRepository, events domain.EventPublisher) *postRepository {
	return &postRepository{
		PostRepository: db,
		publisher:      publisher{users: users, events: events},
	}
}

func (r *postRepository) Store(ctx context.Context, p *domain.Post) error {
	if err := r.PostRepository.Store(ctx, p); err != nil {
		return err
	}
	r.publish(ctx, domain.Event{
		Kind:        domain.ContentCreated,
		UserID:      p.Author.ID,
		UserSlug:    p.Author.Slug,
		CommunityID: p.Community.ID,
		Content:     domain.ContentPost,
		ContentID:   p.ID,
	})
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	// 先取作者，删除后就查不到了
	post, err := r.PostRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.PostRepository.Delete(ctx, id); err != nil {
		return err
	}
	r.publish(ctx, domain.Event{
		Kind:        domain.ContentDeleted,
		UserID:      post.Author.ID,
		UserSlug:    post.Author.Slug,
		CommunityID: post.Community.ID,
		Content:     domain.ContentPost,
		ContentID:   id,
	})
	return nil
}

// commentRepository 发布评论变更事件
type commentRepository struct {
	domain.CommentRepository
	publisher
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db domain.CommentRepository, users domain.UserRepository, events domain.EventPublisher) *commentRepository {
	return &commentRepository{
		CommentRepository: db,
		publisher:         publisher{users: users, events: events},
	}
}

func (r *commentRepository) Store(ctx context.Context, c *domain.Comment) error {
	if err := r.CommentRepository.Store(ctx, c); err != nil {
		return err
	}
	r.publish(ctx, domain.Event{
		Kind:      domain.ContentCreated,
		UserID:    c.UserID,
		Content:   domain.ContentComment,
		ContentID: c.ID,
	})
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id int64, userID int64) (domain.Comment, error) {
	c, err := r.CommentRepository.Delete(ctx, id, userID)
	if err != nil {
		return c, err
	}
	r.publish(ctx, domain.Event{
		Kind:      domain.ContentDeleted,
		UserID:    c.UserID,
		Content:   domain.ContentComment,
		ContentID: c.ID,
	})
	return c, nil
}

// ratingRepository 发布评分变更事件
type ratingRepository struct {
	domain.RatingRepository
	publisher
}

var _ domain.RatingRepository = (*ratingRepository)(nil)

func NewRatingRepository(db domain.RatingRepository, users domain.UserRepository, events domain.EventPublisher) *ratingRepository {
	return &ratingRepository{
		RatingRepository: db,
		publisher:        publisher{users: users, events: events},
	}
}

func (r *ratingRepository) Rate(ctx context.Context, rt *domain.Rating) error {
	if err := r.RatingRepository.Rate(ctx, rt); err != nil {
		return err
	}
	r.publish(ctx, domain.Event{
		Kind:      domain.RatingChanged,
		UserID:    rt.UserID,
		ContentID: rt.TargetID,
		Content:   contentOf(rt.TargetType),
	})
	return nil
}

func (r *ratingRepository) Unrate(ctx context.Context, target domain.TargetType, targetID, userID int64) error {
	if err := r.RatingRepository.Unrate(ctx, target, targetID, userID); err != nil {
		return err
	}
	r.publish(ctx, domain.Event{
		Kind:      domain.RatingChanged,
		UserID:    userID,
		ContentID: targetID,
		Content:   contentOf(target),
	})
	return nil
}

func contentOf(t domain.TargetType) domain.ContentKind {
	if t == domain.TargetComment {
		return domain.ContentComment
	}
	return domain.ContentPost
}

// communityRepository 发布社区信息变更事件
type communityRepository struct {
	domain.CommunityRepository
	publisher
}

var _ domain.CommunityRepository = (*communityRepository)(nil)

func NewCommunityRepository(db domain.CommunityRepository, users domain.UserRepository, events domain.EventPublisher) *communityRepository {
	return &communityRepository{
		CommunityRepository: db,
		publisher:           publisher{users: users, events: events},
	}
}

func (r *communityRepository) Update(ctx context.Context, c *domain.Community) error {
	if err := r.CommunityRepository.Update(ctx, c); err != nil {
		return err
	}
	r.publish(ctx, domain.Event{
		Kind:        domain.CommunityUpdated,
		CommunityID: c.ID,
	})
	return nil
}
