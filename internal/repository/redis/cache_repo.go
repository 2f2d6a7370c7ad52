package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
)

const opTimeout = 2 * time.Second

// CacheRepo хранит JSON-снимки списков справочников и счетчики rate limit
// в одном пространстве ключей с общим префиксом.
type CacheRepo struct {
	client redis.UniversalClient
	prefix string
}

// NewCacheRepo создает репозиторий поверх готового клиента.
func NewCacheRepo(client redis.UniversalClient, prefix string) (*CacheRepo, error) {
	if client == nil {
		return nil, fmt.Errorf("cache repo: redis client is nil")
	}
	return &CacheRepo{client: client, prefix: prefix}, nil
}

func (r *CacheRepo) key(k string) string {
	return r.prefix + k
}

func (r *CacheRepo) keys(ks []string) []string {
	full := make([]string, len(ks))
	for i, k := range ks {
		full[i] = r.key(k)
	}
	return full
}

func opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), opTimeout)
}

// SetJSON сериализует value и кладет его под ключ с TTL.
func (r *CacheRepo) SetJSON(key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache %s: marshal: %w", key, err)
	}
	ctx, cancel := opContext()
	defer cancel()
	return r.client.Set(ctx, r.key(key), data, expiration).Err()
}

// GetJSON читает ключ в dest. Промах кеша дает ErrNotFound.
func (r *CacheRepo) GetJSON(key string, dest interface{}) error {
	ctx, cancel := opContext()
	defer cancel()
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("cache %s: unmarshal: %w", key, err)
	}
	return nil
}

// Delete инвалидирует ключи. Без ключей ничего не делает.
func (r *CacheRepo) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	ctx, cancel := opContext()
	defer cancel()
	return r.client.Del(ctx, r.keys(keys)...).Err()
}

// IncrWindow выполняет INCR и TTL одной транзакцией MULTI/EXEC.
// Окно выставляется, если у ключа еще нет срока жизни.
func (r *CacheRepo) IncrWindow(key string, window time.Duration) (int64, time.Duration, error) {
	ctx, cancel := opContext()
	defer cancel()
	full := r.key(key)

	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, full)
		ttl = pipe.TTL(ctx, full)
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	remaining := ttl.Val()
	if remaining <= 0 {
		if err := r.client.Expire(ctx, full, window).Err(); err != nil {
			return incr.Val(), window, err
		}
		remaining = window
	}
	return incr.Val(), remaining, nil
}
