package recommend

import (
	"context"
	"fmt"

	"github.com/cldprgm/Network-vibe/domain"
)

// Communities loads communities for an ordered ID page, keeping the page order.
func Communities(ctx context.Context, repo domain.CommunityRepository, ids []int64) ([]domain.Community, error) {
	if len(ids) == 0 {
		return []domain.Community{}, nil
	}
	found, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load communities: %w", err)
	}
	byID := make(map[int64]domain.Community, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}
	res := make([]domain.Community, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			res = append(res, c)
		}
	}
	return res, nil
}

// JoinMembership pairs each community with the viewer's membership flag.
// The input may be a shared cached value and is not modified.
func JoinMembership(ctx context.Context, repo domain.MembershipRepository, viewer domain.Viewer, communities []domain.Community) ([]domain.CommunityItem, error) {
	items := make([]domain.CommunityItem, len(communities))
	for i, c := range communities {
		items[i] = domain.CommunityItem{Community: c}
	}
	if !viewer.IsAuthenticated() || len(communities) == 0 {
		return items, nil
	}

	ids := make([]int64, len(communities))
	for i, c := range communities {
		ids[i] = c.ID
	}
	member, err := repo.MemberOf(ctx, viewer.UserID, ids)
	if err != nil {
		return nil, fmt.Errorf("load memberships: %w", err)
	}
	for i := range items {
		items[i].IsMember = member[items[i].Community.ID]
	}
	return items, nil
}
