package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestEventfindaCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewEventfindaCacheRepository(rdb, 2*time.Second)

	t.Run("LocationRoundTrip", func(t *testing.T) {
		require.NoError(t, repo.SetLocationID(ctx, "Melbourne", 26))

		id, err := repo.GetLocationID(ctx, " melbourne ")
		require.NoError(t, err)
		assert.Equal(t, int64(26), id)
	})

	t.Run("LocationMiss", func(t *testing.T) {
		_, err := repo.GetLocationID(ctx, "atlantis")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("LocationExpires", func(t *testing.T) {
		require.NoError(t, repo.SetLocationID(ctx, "sydney", 3))
		time.Sleep(3 * time.Second)

		_, err := repo.GetLocationID(ctx, "sydney")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("Categories", func(t *testing.T) {
		_, err := repo.GetCategories(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)

		data := []byte(`[{"id":1,"name":"Concerts"}]`)
		require.NoError(t, repo.SetCategories(ctx, data))

		got, err := repo.GetCategories(ctx)
		require.NoError(t, err)
		assert.JSONEq(t, string(data), string(got))

		ttl, err := rdb.TTL(ctx, categoriesKey).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, 23*time.Hour)
	})
}
