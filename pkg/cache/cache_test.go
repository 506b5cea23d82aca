package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"yokeair/pkg/cache"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestRedis(t *testing.T, ttl time.Duration) *cache.Redis {
	t.Helper()

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379"},
			WaitingFor:   wait.ForListeningPort("6379"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	r, err := cache.New(ctx, cache.Options{
		Addr:   fmt.Sprintf("%s:%d", host, port.Int()),
		Prefix: "test:",
		TTL:    ttl,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
	})

	return r
}

func TestRedis(t *testing.T) {
	r := setupTestRedis(t, time.Minute)
	ctx := context.Background()

	type entry struct {
		IDs []string `json:"ids"`
	}

	var got entry
	found, err := r.Get(ctx, "missing", &got)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, r.Set(ctx, "k", entry{IDs: []string{"a", "b"}}))
	found, err = r.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []string{"a", "b"}, got.IDs)

	gen, err := r.Generation(ctx, "search")
	require.NoError(t, err)
	require.Zero(t, gen)

	gen, err = r.Bump(ctx, "search")
	require.NoError(t, err)
	require.Equal(t, int64(1), gen)
	gen, err = r.Bump(ctx, "search")
	require.NoError(t, err)
	require.Equal(t, int64(2), gen)

	gen, err = r.Generation(ctx, "search")
	require.NoError(t, err)
	require.Equal(t, int64(2), gen)
}

func TestRedis_TTL(t *testing.T) {
	r := setupTestRedis(t, time.Second)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "short", 1))
	require.Eventually(t, func() bool {
		var v int
		found, err := r.Get(ctx, "short", &v)

		return err == nil && !found
	}, 5*time.Second, 100*time.Millisecond)
}
