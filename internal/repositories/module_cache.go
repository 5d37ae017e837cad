package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/manudev/course-catalog-api/internal/logger"
)

const moduleCacheKey = "courses:modules"

// ModuleCacheRepository caches the distinct module listing in Redis.
type ModuleCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for the cached listing
}

// NewModuleCacheRepository creates a new repository instance with the given TTL.
func NewModuleCacheRepository(client *redis.Client, expiration time.Duration) *ModuleCacheRepository {
	return &ModuleCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached module listing. A cache miss surfaces as an error;
// the caller falls back to the store.
func (r *ModuleCacheRepository) Get(ctx context.Context) ([]string, error) {
	val, err := r.client.Get(ctx, moduleCacheKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", moduleCacheKey,
			"error", err,
		)
		return nil, err
	}

	var modules []string
	if err := json.Unmarshal([]byte(val), &modules); err != nil {
		logger.Log.Infow(
			"key", moduleCacheKey,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", moduleCacheKey,
		"result", modules,
		"error", nil,
	)

	return modules, nil
}

// Set caches the module listing with the configured expiration.
func (r *ModuleCacheRepository) Set(ctx context.Context, modules []string) error {
	data, err := json.Marshal(modules)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, moduleCacheKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", moduleCacheKey,
		"value", modules,
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cached listing after a catalog mutation.
func (r *ModuleCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, moduleCacheKey).Err()

	logger.Log.Infow(
		"key", moduleCacheKey,
		"result", "deleted",
		"error", err,
	)

	return err
}
