package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quizroom/internal/config"
	"quizroom/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisNotifier implements the fire-and-forget persistence side-channel on
// top of a Redis list per record kind. It is not a queryable store: records
// are pushed for an external consumer to drain, and a failed push is the
// caller's cue to log and move on, never to fail the operation.
type RedisNotifier struct {
	client *redis.Client
}

// envelope is the wire format pushed onto the notification list.
type envelope struct {
	Kind       string      `json:"kind"`
	RecordID   string      `json:"record_id"`
	Payload    interface{} `json:"payload"`
	NotifiedAt time.Time   `json:"notified_at"`
}

// NewRedisClient creates and pings a Redis client from configuration.
func NewRedisClient(redisCfg config.RedisConfig) (*redis.Client, error) {
	if redisCfg.Address == "" {
		return nil, fmt.Errorf("redis configuration is missing or address is empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Address,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", redisCfg.Address, err)
	}
	return client, nil
}

// NewRedisNotifier creates a notifier over a connected client.
func NewRedisNotifier(client *redis.Client) domain.Notifier {
	return &RedisNotifier{client: client}
}

// Notify pushes one record onto the list for its kind.
func (n *RedisNotifier) Notify(ctx context.Context, kind domain.RecordKind, recordID string, payload interface{}) error {
	body, err := json.Marshal(envelope{
		Kind:       string(kind),
		RecordID:   recordID,
		Payload:    payload,
		NotifiedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s notification: %w", kind, err)
	}
	return n.client.RPush(ctx, listKey(kind), string(body)).Err()
}

func listKey(kind domain.RecordKind) string {
	return "notify:" + string(kind)
}

var _ domain.Notifier = (*RedisNotifier)(nil)
