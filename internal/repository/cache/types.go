package cache

import (
	"encoding/json"
	"time"
)

// Entry 缓存条目，写入后不可修改，刷新即整体替换
type Entry struct {
	Payload     json.RawMessage `json:"payload"`
	GeneratedAt time.Time       `json:"generated_at"` // 生成时间，用于调试
	TTL         time.Duration   `json:"ttl"`
}

// NewEntry encodes payload into a fresh entry
func NewEntry(payload any, ttl time.Duration) (*Entry, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Entry{
		Payload:     raw,
		GeneratedAt: time.Now(),
		TTL:         ttl,
	}, nil
}

// Decode unmarshals the payload into dst
func (e *Entry) Decode(dst any) error {
	return json.Unmarshal(e.Payload, dst)
}
