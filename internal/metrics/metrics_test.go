package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestListName(t *testing.T) {
	assert.Equal(t, "trending_posts_ids", ListName("trending_posts_ids"))
	assert.Equal(t, "user_recommendations", ListName("user_recommendations:42"))
	assert.Equal(t, "user_posts_first_page", ListName("user_posts_first_page:bob:new"))
}

func TestRecordCacheLookup(t *testing.T) {
	c := ListCacheLookups.WithLabelValues("session_feed", ResultHit)
	before := testutil.ToFloat64(c)

	RecordCacheLookup("session_feed:abc", ResultHit)
	RecordCacheLookup("session_feed:xyz", ResultHit)

	assert.Equal(t, before+2, testutil.ToFloat64(c))
}

func TestRecordScoreJob(t *testing.T) {
	failures := ScoreJobFailures.WithLabelValues("test_job")
	before := testutil.ToFloat64(failures)

	RecordScoreJob("test_job", 12, time.Second, nil)
	assert.Equal(t, 12.0, testutil.ToFloat64(ScoreJobRowsUpdated.WithLabelValues("test_job")))

	RecordScoreJob("test_job", 0, time.Second, errors.New("deadlock"))
	assert.Equal(t, before+1, testutil.ToFloat64(failures))
	// a failed run keeps the last successful count
	assert.Equal(t, 12.0, testutil.ToFloat64(ScoreJobRowsUpdated.WithLabelValues("test_job")))
}

func TestRecordInvalidation(t *testing.T) {
	c := InvalidatedKeys.WithLabelValues("content.created")
	before := testutil.ToFloat64(c)
	RecordInvalidation("content.created", 3)
	assert.Equal(t, before+3, testutil.ToFloat64(c))
}
