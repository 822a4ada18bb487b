package membership

import (
	"context"

	"github.com/cldprgm/Network-vibe/domain"
)

type Service struct {
	membershipRepo domain.MembershipRepository
}

var _ domain.MembershipUsecase = (*Service)(nil)

// NewService takes the publishing membership repository, so that every
// successful write emits the invalidation event.
func NewService(m domain.MembershipRepository) *Service {
	return &Service{
		membershipRepo: m,
	}
}

func (s *Service) Join(ctx context.Context, userID, communityID int64) error {
	if userID <= 0 {
		return domain.ErrUnauthorized
	}
	if communityID <= 0 {
		return domain.ErrBadParamInput
	}
	return s.membershipRepo.Create(ctx, &domain.Membership{
		UserID:      userID,
		CommunityID: communityID,
		Role:        domain.RoleMember,
	})
}

func (s *Service) Leave(ctx context.Context, userID, communityID int64) error {
	if userID <= 0 {
		return domain.ErrUnauthorized
	}
	if communityID <= 0 {
		return domain.ErrBadParamInput
	}
	return s.membershipRepo.Delete(ctx, userID, communityID)
}
