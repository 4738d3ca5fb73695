package db

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Options selects and configures a Backend.
type Options struct {
	Kind       string // file, memory, mongo, redis, sqlite
	DataDir    string
	MongoURI   string
	MongoDB    string
	SQLitePath string
	Redis      *redis.Client
}

// Open builds the Backend named by opts.Kind, wrapped with metrics.
func Open(ctx context.Context, opts Options) (Backend, error) {
	var (
		b   Backend
		err error
	)
	switch opts.Kind {
	case "", "file":
		b, err = NewFileBackend(opts.DataDir)
	case "memory":
		b = NewMemoryBackend()
	case "mongo":
		b, err = NewMongoBackend(ctx, opts.MongoURI, opts.MongoDB)
	case "redis":
		if opts.Redis == nil {
			return nil, fmt.Errorf("redis backend requires a redis client")
		}
		if err := opts.Redis.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		b = NewRedisBackend(opts.Redis)
	case "sqlite":
		b, err = NewSQLiteBackend(opts.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Kind)
	}
	if err != nil {
		return nil, err
	}
	return Instrument(b), nil
}
