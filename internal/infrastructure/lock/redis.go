package lock

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	domainLock "peerlend/internal/domain/lock"
)

const keyPrefix = "guard:"

// RedisLocker is the settlement guard: SET NX marks the operation in
// progress, a second acquire while the key exists fails fast, and the TTL
// bounds how long a crashed holder can block the loan.
type RedisLocker struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisLocker(rdb *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{rdb: rdb, ttl: ttl}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) error {
	ok, err := l.rdb.SetNX(ctx, keyPrefix+key, "1", l.ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return domainLock.ErrHeld
	}
	return nil
}

func (l *RedisLocker) Release(ctx context.Context, key string) error {
	return l.rdb.Del(ctx, keyPrefix+key).Err()
}
