package domain

import (
	"context"
	"time"
)

// EventKind names a domain mutation. It doubles as the bus topic.
type EventKind string

const (
	MembershipCreated EventKind = "membership.created"
	MembershipDeleted EventKind = "membership.deleted"
	ContentCreated    EventKind = "content.created"
	ContentDeleted    EventKind = "content.deleted"
	CommunityUpdated  EventKind = "community.updated"
	RatingChanged     EventKind = "rating.changed"
)

// AllEventKinds lists every topic the invalidation listener subscribes to.
var AllEventKinds = []EventKind{
	MembershipCreated,
	MembershipDeleted,
	ContentCreated,
	ContentDeleted,
	CommunityUpdated,
	RatingChanged,
}

// ContentKind tells posts and comments apart in content events
type ContentKind string

const (
	ContentPost    ContentKind = "post"
	ContentComment ContentKind = "comment"
)

// Event is published by the store write path after a successful mutation.
// For content events UserID/UserSlug identify the author whose lists went stale.
type Event struct {
	Kind        EventKind   `json:"kind"`
	UserID      int64       `json:"user_id,omitempty"`
	UserSlug    string      `json:"user_slug,omitempty"`
	CommunityID int64       `json:"community_id,omitempty"`
	Content     ContentKind `json:"content,omitempty"`
	ContentID   int64       `json:"content_id,omitempty"`
	OccurredAt  time.Time   `json:"occurred_at"`
}

// EventPublisher sends domain events to the bus
type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
}
