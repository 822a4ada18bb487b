package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/metrics"
)

// ListRepository 协调层，协调列表缓存和列表构建
//
// Lists returned by FetchIDs and FetchPayload may be shared by concurrent
// callers of the same key and must be treated as read-only.
type ListRepository struct {
	cache domain.ListCache
	group singleflight.Group

	mu       sync.Mutex
	building map[string]*buildState
}

// buildState marks one in-flight build. stale is set when the key is
// invalidated before the build stores its result.
type buildState struct {
	stale bool
}

func NewListRepository(cache domain.ListCache) *ListRepository {
	return &ListRepository{
		cache:    cache,
		building: make(map[string]*buildState),
	}
}

// FetchIDs returns the ID list cached under key, building and storing it on a miss.
func (r *ListRepository) FetchIDs(ctx context.Context, key string, ttl time.Duration, build func(context.Context) ([]int64, error)) ([]int64, error) {
	return fetchOrBuild(ctx, r, key, build,
		func(ctx context.Context) ([]int64, error) {
			return r.cache.GetIDs(ctx, key)
		},
		func(ctx context.Context, ids []int64) error {
			return r.cache.SetIDs(ctx, key, ids, ttl)
		},
	)
}

// FetchPayload is FetchIDs for serialized response envelopes.
func FetchPayload[T any](ctx context.Context, r *ListRepository, key string, ttl time.Duration, build func(context.Context) (T, error)) (T, error) {
	return fetchOrBuild(ctx, r, key, build,
		func(ctx context.Context) (T, error) {
			var v T
			err := r.cache.GetPayload(ctx, key, &v)
			return v, err
		},
		func(ctx context.Context, v T) error {
			return r.cache.SetPayload(ctx, key, v, ttl)
		},
	)
}

// Invalidate deletes keys. A build of one of them that is already running
// still answers its waiting callers but no longer writes its result to the
// cache, and later readers start a fresh build.
func (r *ListRepository) Invalidate(ctx context.Context, keys ...string) error {
	r.mu.Lock()
	for _, k := range keys {
		if st, ok := r.building[k]; ok {
			st.stale = true
			delete(r.building, k)
		}
		r.group.Forget(k)
	}
	r.mu.Unlock()

	if len(keys) == 1 {
		return r.cache.Delete(ctx, keys[0])
	}
	return r.cache.DeleteMany(ctx, keys...)
}

func (r *ListRepository) beginBuild(key string) *buildState {
	st := &buildState{}
	r.mu.Lock()
	r.building[key] = st
	r.mu.Unlock()
	return st
}

// endBuild reports whether the result may still be cached.
func (r *ListRepository) endBuild(key string, st *buildState) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.building[key] == st {
		delete(r.building, key)
	}
	return !st.stale
}

func fetchOrBuild[T any](
	ctx context.Context,
	r *ListRepository,
	key string,
	build func(context.Context) (T, error),
	get func(context.Context) (T, error),
	set func(context.Context, T) error,
) (T, error) {
	var zero T

	// 1. 先从缓存获取，缓存故障按未命中处理
	cached, err := get(ctx)
	switch {
	case err == nil:
		metrics.RecordCacheLookup(key, metrics.ResultHit)
		return cached, nil
	case errors.Is(err, domain.ErrCacheMiss):
		metrics.RecordCacheLookup(key, metrics.ResultMiss)
	default:
		metrics.RecordCacheLookup(key, metrics.ResultError)
		logrus.Warnf("list cache get %s failed, building from store: %v", key, err)
	}

	// 2. 缓存未命中，使用singleflight避免缓存击穿
	// 构建不跟随任何单个请求取消，每个调用方只放弃自己的等待
	ch := r.group.DoChan(key, func() (any, error) {
		st := r.beginBuild(key)
		buildCtx := context.WithoutCancel(ctx)

		start := time.Now()
		v, err := build(buildCtx)
		metrics.RecordListBuild(key, time.Since(start), err)
		if !r.endBuild(key, st) || err != nil {
			return v, err
		}

		// 写缓存失败不影响本次请求
		if err := set(buildCtx, v); err != nil {
			logrus.Warnf("list cache set %s failed: %v", key, err)
		}
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Shared {
			metrics.RecordSharedBuild(key)
		}
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}
