// Package store provides the key-value blob store backing the review
// collection. Values are opaque byte slices; callers own the encoding.
package store

import (
	"context"
	"errors"

	"reviewrelay/internal/config"
)

// ErrNotFound is returned by Get when no value was ever written for a key.
var ErrNotFound = errors.New("key not found")

// Store is the minimal contract the service needs: get and put of one
// byte blob per string key. No transactions — concurrent writers to the
// same key are last-writer-wins.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Open selects a backend from config: Redis when REDIS_ADDR is set,
// otherwise a SQL store on DATABASE_URL (postgres or sqlite by DSN).
func Open(cfg *config.Config) (Store, error) {
	if cfg.RedisAddr != "" {
		return NewRedisStore(cfg.RedisAddr, cfg.RedisPassword)
	}
	return NewGormStore(cfg.DatabaseURL)
}
