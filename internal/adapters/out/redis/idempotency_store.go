// Package redis remembers Idempotency-Key headers of write requests.
package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "idemp:"

// IdempotencyStore claims request keys with SET NX so that a retried request
// is recognised for as long as the TTL lasts.
type IdempotencyStore struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewIdempotencyStore(rdb *goredis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{rdb: rdb, ttl: ttl}
}

// Claim returns true the first time a key is seen within the scope.
func (s *IdempotencyStore) Claim(ctx context.Context, scope, key string) (bool, error) {
	return s.rdb.SetNX(ctx, keyPrefix+scope+":"+key, "1", s.ttl).Result()
}

// Release forgets a claimed key so the request may be retried, e.g. after the
// handler failed before doing any work.
func (s *IdempotencyStore) Release(ctx context.Context, scope, key string) error {
	return s.rdb.Del(ctx, keyPrefix+scope+":"+key).Err()
}

// Remember stores the response body produced for a claimed key.
func (s *IdempotencyStore) Remember(ctx context.Context, scope, key string, response []byte) error {
	return s.rdb.Set(ctx, keyPrefix+"resp:"+scope+":"+key, response, s.ttl).Err()
}

// Recall returns the response stored by Remember, if any.
func (s *IdempotencyStore) Recall(ctx context.Context, scope, key string) ([]byte, bool, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+"resp:"+scope+":"+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Ping checks the connection, used at startup.
func (s *IdempotencyStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
