package rdx

import (
	"github.com/redis/go-redis/v9"
)

// Connect returns a client for addr. The connection is established lazily on
// first use.
func Connect(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password, // Empty if no password
		DB:       0,
	})
}
