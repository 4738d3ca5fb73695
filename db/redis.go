package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisBackend keeps each collection as a JSON array under "collection:<name>".
// The client is owned by the caller and is not closed here.
type RedisBackend struct {
	conn *redis.Client
}

func NewRedisBackend(conn *redis.Client) *RedisBackend {
	return &RedisBackend{conn: conn}
}

func redisCollectionKey(name string) string {
	return "collection:" + name
}

func (b *RedisBackend) Load(ctx context.Context, name string) ([]json.RawMessage, error) {
	data, err := b.conn.Get(ctx, redisCollectionKey(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []json.RawMessage{}, nil
	}
	if err != nil {
		return nil, err
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("corrupt collection key %s: %w", redisCollectionKey(name), err)
	}
	if records == nil {
		records = []json.RawMessage{}
	}
	return records, nil
}

func (b *RedisBackend) Replace(ctx context.Context, name string, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return b.conn.Set(ctx, redisCollectionKey(name), data, 0).Err()
}

func (b *RedisBackend) Close(context.Context) error {
	return nil
}
