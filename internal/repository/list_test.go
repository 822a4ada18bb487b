package repository_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/repository"
	myredis "github.com/cldprgm/Network-vibe/internal/repository/redis"
)

func setupLists(t *testing.T) (*repository.ListRepository, domain.ListCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	c := myredis.NewListCache(client)
	return repository.NewListRepository(c), c, mr
}

func TestFetchIDsBuildsOnceThenHits(t *testing.T) {
	lists, _, mr := setupLists(t)
	ctx := t.Context()

	var calls int
	build := func(context.Context) ([]int64, error) {
		calls++
		return []int64{3, 2, 1}, nil
	}

	ids, err := lists.FetchIDs(ctx, myredis.KeyTrendingPosts, 240*time.Second, build)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1}, ids)
	assert.True(t, mr.Exists(myredis.KeyTrendingPosts))

	ids, err = lists.FetchIDs(ctx, myredis.KeyTrendingPosts, 240*time.Second, build)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1}, ids)
	assert.Equal(t, 1, calls)

	mr.FastForward(241 * time.Second)
	_, err = lists.FetchIDs(ctx, myredis.KeyTrendingPosts, 240*time.Second, build)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestFetchIDsBuildErrorIsNotCached(t *testing.T) {
	lists, _, mr := setupLists(t)
	boom := errors.New("db down")

	_, err := lists.FetchIDs(t.Context(), "k", time.Minute, func(context.Context) ([]int64, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("k"))
}

func TestFetchIDsCollapsesConcurrentMisses(t *testing.T) {
	lists, _, _ := setupLists(t)

	var calls atomic.Int32
	release := make(chan struct{})
	build := func(context.Context) ([]int64, error) {
		calls.Add(1)
		<-release
		return []int64{1}, nil
	}

	const n = 8
	var wg sync.WaitGroup
	results := make([][]int64, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids, err := lists.FetchIDs(context.Background(), "hot", time.Minute, build)
			assert.NoError(t, err)
			results[i] = ids
		}()
	}

	// let every goroutine reach the cache miss before the build finishes
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, calls.Load(), int32(n))
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
	for _, r := range results {
		assert.Equal(t, []int64{1}, r)
	}
}

func TestFetchIDsCacheDownServesFromBuilder(t *testing.T) {
	client, mock := redismock.NewClientMock()
	lists := repository.NewListRepository(myredis.NewListCache(client))

	mock.ExpectGet("k").SetErr(errors.New("i/o timeout"))
	mock.Regexp().ExpectSet("k", `.*`, time.Minute).SetErr(errors.New("i/o timeout"))

	ids, err := lists.FetchIDs(t.Context(), "k", time.Minute, func(context.Context) ([]int64, error) {
		return []int64{5, 4}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 4}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchPayload(t *testing.T) {
	lists, _, _ := setupLists(t)
	ctx := t.Context()

	type page struct {
		Type string  `json:"type"`
		IDs  []int64 `json:"ids"`
	}
	var calls int
	build := func(context.Context) (page, error) {
		calls++
		return page{Type: "just_popular_communities", IDs: []int64{8, 9}}, nil
	}

	first, err := repository.FetchPayload(ctx, lists, myredis.AuthRecsFirstPageKey(1), 5*time.Minute, build)
	require.NoError(t, err)
	second, err := repository.FetchPayload(ctx, lists, myredis.AuthRecsFirstPageKey(1), 5*time.Minute, build)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestInvalidate(t *testing.T) {
	lists, c, mr := setupLists(t)
	ctx := t.Context()

	keys := myredis.UserPostsFirstPageKeys("bob")
	for _, k := range keys {
		require.NoError(t, c.SetIDs(ctx, k, []int64{1}, time.Minute))
	}

	require.NoError(t, lists.Invalidate(ctx, keys...))
	for _, k := range keys {
		assert.False(t, mr.Exists(k))
	}
}

func TestFetchIDsJoinerOutlivesCancelledLeader(t *testing.T) {
	lists, _, mr := setupLists(t)

	started := make(chan struct{})
	release := make(chan struct{})
	build := func(ctx context.Context) ([]int64, error) {
		close(started)
		select {
		case <-release:
			return []int64{4, 2}, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := lists.FetchIDs(leaderCtx, myredis.KeyTrendingPosts, time.Minute, build)
		leaderErr <- err
	}()
	<-started

	joined := make(chan []int64, 1)
	go func() {
		ids, err := lists.FetchIDs(context.Background(), myredis.KeyTrendingPosts, time.Minute, build)
		assert.NoError(t, err)
		joined <- ids
	}()

	// the leader gives up while the build is still running
	time.Sleep(20 * time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-leaderErr, context.Canceled)

	close(release)
	assert.Equal(t, []int64{4, 2}, <-joined)
	assert.True(t, mr.Exists(myredis.KeyTrendingPosts))
}

func TestInvalidateDuringBuildSkipsStore(t *testing.T) {
	lists, _, mr := setupLists(t)
	key := myredis.AuthRecsFirstPageKey(7)

	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	build := func(context.Context) ([]int64, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			return []int64{1}, nil
		}
		return []int64{1, 9}, nil
	}

	done := make(chan []int64, 1)
	go func() {
		ids, err := lists.FetchIDs(context.Background(), key, time.Minute, build)
		assert.NoError(t, err)
		done <- ids
	}()
	<-started

	require.NoError(t, lists.Invalidate(t.Context(), key))
	close(release)

	// the in-flight caller still gets its answer, but nothing stale is cached
	assert.Equal(t, []int64{1}, <-done)
	assert.False(t, mr.Exists(key))

	ids, err := lists.FetchIDs(t.Context(), key, time.Minute, build)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 9}, ids)
	assert.True(t, mr.Exists(key))
}
