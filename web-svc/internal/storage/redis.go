package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"overcooked-simplified/web-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisFlashStore keeps pending notifications per session in a Redis list.
type RedisFlashStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisFlashStore(client *redis.Client, ttl time.Duration) *RedisFlashStore {
	return &RedisFlashStore{Client: client, TTL: ttl}
}

func (s *RedisFlashStore) FlashKey(session string) string {
	return "flash:" + session
}

func (s *RedisFlashStore) Push(ctx context.Context, session string, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	key := s.FlashKey(session)
	pipe := s.Client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.Expire(ctx, key, s.TTL)
	_, err = pipe.Exec(ctx)
	return err
}

// Drain reads and deletes the list in one transaction so a toast is never shown twice.
func (s *RedisFlashStore) Drain(ctx context.Context, session string) ([]domain.Notification, error) {
	key := s.FlashKey(session)
	pipe := s.Client.TxPipeline()
	items := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	raw := items.Val()
	list := make([]domain.Notification, 0, len(raw))
	for _, item := range raw {
		var n domain.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			continue
		}
		list = append(list, n)
	}
	return list, nil
}
