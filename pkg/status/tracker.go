package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "doc_status:"

// Snapshot is the fast-polling view of a document's processing state.
type Snapshot struct {
	Status    string    `json:"status"`
	Progress  int       `json:"progress"`
	Stage     string    `json:"stage"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Tracker mirrors processing milestones into redis so the UI can poll
// without hitting the primary store. Writes are best-effort; the database
// remains the source of truth.
type Tracker struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTracker(rdb *redis.Client) *Tracker {
	return &Tracker{
		rdb: rdb,
		ttl: 24 * time.Hour,
	}
}

func (t *Tracker) Set(ctx context.Context, documentId string, snapshot Snapshot) error {
	if t.rdb == nil {
		return nil
	}
	snapshot.UpdatedAt = time.Now()
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal status snapshot: %w", err)
	}
	return t.rdb.Set(ctx, keyPrefix+documentId, raw, t.ttl).Err()
}

// Get returns nil without error when no snapshot exists.
func (t *Tracker) Get(ctx context.Context, documentId string) (*Snapshot, error) {
	if t.rdb == nil {
		return nil, nil
	}
	raw, err := t.rdb.Get(ctx, keyPrefix+documentId).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var snapshot Snapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal status snapshot: %w", err)
	}
	return &snapshot, nil
}

func (t *Tracker) Clear(ctx context.Context, documentId string) error {
	if t.rdb == nil {
		return nil
	}
	return t.rdb.Del(ctx, keyPrefix+documentId).Err()
}
