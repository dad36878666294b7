package repositories

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-event-planner/internal/logger"
)

// CategoriesTTL is how long the Eventfinda category list stays cached.
const CategoriesTTL = 24 * time.Hour

const (
	locationKeyPrefix = "eventfinda:location:"
	categoriesKey     = "eventfinda:categories"
)

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// EventfindaCacheRepository caches Eventfinda lookups in Redis.
type EventfindaCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of cached location ids
}

// NewEventfindaCacheRepository creates a repository whose location ids expire after expiration.
func NewEventfindaCacheRepository(client *redis.Client, expiration time.Duration) *EventfindaCacheRepository {
	return &EventfindaCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func locationKey(query string) string {
	return locationKeyPrefix + strings.ToLower(strings.TrimSpace(query))
}

// GetLocationID returns the cached location id for query.
func (r *EventfindaCacheRepository) GetLocationID(ctx context.Context, query string) (int64, error) {
	key := locationKey(query)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return 0, ErrCacheMiss
		}
		return 0, err
	}

	id, err := strconv.ParseInt(val, 10, 64)

	logger.Log.Infow(
		"key", key,
		"value", val,
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return id, nil
}

// SetLocationID caches the location id for query with the repository TTL.
func (r *EventfindaCacheRepository) SetLocationID(ctx context.Context, query string, id int64) error {
	key := locationKey(query)
	err := r.client.Set(ctx, key, strconv.FormatInt(id, 10), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"value", id,
		"ttl", r.exp,
		"error", err,
	)

	return err
}

// GetCategories returns the cached category list as raw JSON.
func (r *EventfindaCacheRepository) GetCategories(ctx context.Context) ([]byte, error) {
	val, err := r.client.Get(ctx, categoriesKey).Bytes()

	logger.Log.Infow(
		"key", categoriesKey,
		"bytes", len(val),
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// SetCategories caches the raw JSON category list for CategoriesTTL.
func (r *EventfindaCacheRepository) SetCategories(ctx context.Context, data []byte) error {
	err := r.client.Set(ctx, categoriesKey, data, CategoriesTTL).Err()

	logger.Log.Infow(
		"key", categoriesKey,
		"bytes", len(data),
		"ttl", CategoriesTTL,
		"error", err,
	)

	return err
}
