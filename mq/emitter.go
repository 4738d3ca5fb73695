package mq

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"cookbook/models"
	"cookbook/utils"
)

// Channel is the Redis pub/sub channel change events are published on.
const Channel = "collection-events"

// Emitter announces committed mutations. Emit never fails the caller's
// request; delivery problems are logged.
type Emitter interface {
	Emit(ctx context.Context, collection, method, id string)
}

// NewChange stamps a change event with the current time.
func NewChange(collection, method, id string) models.Change {
	return models.Change{
		Collection: collection,
		Method:     method,
		ID:         id,
		At:         utils.ISOTime(time.Now()),
	}
}

// LogEmitter only logs events at debug level.
type LogEmitter struct{}

func (LogEmitter) Emit(_ context.Context, collection, method, id string) {
	slog.Debug("Collection changed", "collection", collection, "method", method, "id", id)
}

// RedisEmitter publishes events as JSON on Channel.
type RedisEmitter struct {
	conn *redis.Client
}

func NewRedisEmitter(conn *redis.Client) *RedisEmitter {
	return &RedisEmitter{conn: conn}
}

func (e *RedisEmitter) Emit(ctx context.Context, collection, method, id string) {
	data, err := json.Marshal(NewChange(collection, method, id))
	if err != nil {
		slog.Warn("Failed to marshal change event", "error", err)
		return
	}
	// Publishing outlives the request context.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := e.conn.Publish(ctx, Channel, data).Err(); err != nil {
		slog.Warn("Failed to publish change event",
			"collection", collection,
			"method", method,
			"id", id,
			"error", err,
		)
	}
}

// Subscribe delivers change events to handle until ctx is done.
func Subscribe(ctx context.Context, conn *redis.Client, handle func(models.Change)) error {
	sub := conn.Subscribe(ctx, Channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return err
	}
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var event models.Change
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				slog.Warn("Failed to parse change event", "error", err)
				continue
			}
			handle(event)
		}
	}
}
