package events

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/sirupsen/logrus"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/metrics"
	"github.com/cldprgm/Network-vibe/internal/repository"
	redisRepo "github.com/cldprgm/Network-vibe/internal/repository/redis"
)

// Listener deletes cached lists made stale by a mutation. It never rebuilds;
// the next reader does.
type Listener struct {
	lists *repository.ListRepository
}

func NewListener(lists *repository.ListRepository) *Listener {
	return &Listener{lists: lists}
}

// Register subscribes one handler per event kind.
func (l *Listener) Register(router *message.Router, sub message.Subscriber) {
	for _, kind := range domain.AllEventKinds {
		router.AddConsumerHandler(
			"invalidate-"+string(kind),
			string(kind),
			sub,
			l.Handle,
		)
	}
}

// Handle invalidates the keys affected by one event. Returning an error lets the
// retry middleware redeliver it.
func (l *Listener) Handle(msg *message.Message) error {
	var ev domain.Event
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		// 无法解析的消息重试也没用
		logrus.Errorf("drop malformed event %s: %v", msg.UUID, err)
		return nil
	}

	keys := StaleKeys(ev)
	if len(keys) == 0 {
		logrus.Debugf("event %s (user %d, content %s:%d) needs no invalidation",
			ev.Kind, ev.UserID, ev.Content, ev.ContentID)
		return nil
	}
	if err := l.lists.Invalidate(msg.Context(), keys...); err != nil {
		return err
	}
	metrics.RecordInvalidation(string(ev.Kind), len(keys))
	return nil
}

// StaleKeys maps an event to the cache keys it invalidates.
func StaleKeys(ev domain.Event) []string {
	switch ev.Kind {
	case domain.MembershipCreated, domain.MembershipDeleted:
		var keys []string
		if ev.UserID > 0 {
			keys = append(keys, redisRepo.AuthRecsFirstPageKey(ev.UserID))
		}
		if ev.UserSlug != "" {
			keys = append(keys, redisRepo.UserCommunitiesFirstPageKey(ev.UserSlug))
		}
		return keys
	case domain.ContentCreated, domain.ContentDeleted:
		// comments are not listed on profiles
		if ev.Content != domain.ContentPost || ev.UserSlug == "" {
			return nil
		}
		return redisRepo.UserPostsFirstPageKeys(ev.UserSlug)
	case domain.CommunityUpdated:
		return []string{redisRepo.UnauthRecsKey("")}
	default:
		// rating.changed 由下一次评分任务处理
		return nil
	}
}
