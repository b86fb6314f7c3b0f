// Package cache stores computed read models (dashboard stats) so repeated
// dashboard loads skip the aggregation queries.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache: miss")

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// NoopCache is used when no Redis address is configured. Every read misses.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) ([]byte, error) { return nil, ErrMiss }

func (NoopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NoopCache) Delete(context.Context, ...string) error { return nil }

// DashboardKey is the cache key of one admin's dashboard stats.
func DashboardKey(adminEmail string) string {
	return "dashboard:admin:" + adminEmail
}
