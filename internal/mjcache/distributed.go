package mjcache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Distributed wraps a redis client for state shared across processes,
// such as the tenhou Archive's cached records.
type Distributed struct {
	cli *redis.Client
}

// NewDistributed dials addr (and optionally authenticates) and verifies
// connectivity with a bounded-timeout PING.
func NewDistributed(addr, password string, db int) (*Distributed, error) {
	cli := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cli.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("mjcache: connect to redis at %s: %w", addr, err)
	}
	return &Distributed{cli: cli}, nil
}

// Set stores value under key with the given expiration (0 means no expiry).
func (d *Distributed) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	return d.cli.Set(ctx, key, value, expiration).Err()
}

// Get retrieves the string stored under key. redis.Nil is returned
// unwrapped so callers can distinguish "missing" from other errors with
// errors.Is(err, redis.Nil).
func (d *Distributed) Get(ctx context.Context, key string) (string, error) {
	return d.cli.Get(ctx, key).Result()
}

// Del removes the given keys.
func (d *Distributed) Del(ctx context.Context, keys ...string) error {
	return d.cli.Del(ctx, keys...).Err()
}

// Close releases the underlying connection pool.
func (d *Distributed) Close() error {
	return d.cli.Close()
}
