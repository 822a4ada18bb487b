package redis

import (
	"fmt"

	"github.com/cldprgm/Network-vibe/domain"
)

const (
	KeyTrendingPosts        = "trending_posts_ids"
	KeyUserRecommendations  = "user_recommendations:%d"
	KeySessionFeed          = "session_feed:%s"
	KeyAuthRecsFirstPage    = "auth_recs_first_page:%d"
	KeyUnauthRecs           = "unauth_recs:%s"
	KeyUserPostsFirstPage   = "user_posts_first_page:%s:%s"
	KeyUserCommunitiesFirst = "user_communities_first_page:%s"
	unauthRecsInitialCursor = "initial"
)

func UserRecommendationsKey(userID int64) string {
	return fmt.Sprintf(KeyUserRecommendations, userID)
}

func SessionFeedKey(session string) string {
	return fmt.Sprintf(KeySessionFeed, session)
}

func AuthRecsFirstPageKey(userID int64) string {
	return fmt.Sprintf(KeyAuthRecsFirstPage, userID)
}

// UnauthRecsKey keys the anonymous community list per cursor. Empty cursor is the shared first page.
func UnauthRecsKey(cursor string) string {
	if cursor == "" {
		cursor = unauthRecsInitialCursor
	}
	return fmt.Sprintf(KeyUnauthRecs, cursor)
}

func UserPostsFirstPageKey(slug string, filter domain.PostFilter) string {
	return fmt.Sprintf(KeyUserPostsFirstPage, slug, filter)
}

// UserPostsFirstPageKeys returns the keys of every filter variant of an author's first page.
func UserPostsFirstPageKeys(slug string) []string {
	keys := make([]string, 0, len(domain.AllPostFilters))
	for _, f := range domain.AllPostFilters {
		keys = append(keys, UserPostsFirstPageKey(slug, f))
	}
	return keys
}

func UserCommunitiesFirstPageKey(slug string) string {
	return fmt.Sprintf(KeyUserCommunitiesFirst, slug)
}
