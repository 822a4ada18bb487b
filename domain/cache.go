package domain

import (
	"context"
	"time"
)

// ListCache stores precomputed ordered ID lists and serialized response pages.
// Entries are replaced as a whole and never patched.
type ListCache interface {
	// GetIDs returns ErrCacheMiss if the key is absent or expired.
	GetIDs(ctx context.Context, key string) ([]int64, error)
	SetIDs(ctx context.Context, key string, ids []int64, ttl time.Duration) error

	// GetPayload decodes the entry into dst. Returns ErrCacheMiss if absent.
	GetPayload(ctx context.Context, key string, dst any) error
	SetPayload(ctx context.Context, key string, payload any, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
	// DeleteMany removes the keys, absent keys are not an error.
	DeleteMany(ctx context.Context, keys ...string) error
}
