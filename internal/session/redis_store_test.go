package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ppopeskul/wa-dashboard/internal/session"
)

func setupTestRedis(t *testing.T) (*redis.Client, func()) {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})

	cleanup := func() {
		_ = client.Close()
		_ = container.Terminate(ctx)
	}

	return client, cleanup
}

func TestRedisStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}

	client, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	store := session.NewRedisStore(client, "test:session:", time.Minute)

	require.NoError(t, store.Ping(ctx))

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	require.NoError(t, store.Save(ctx, "tok", &session.Session{LoggedIn: true, Theme: session.ThemeLight}))

	got, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, &session.Session{LoggedIn: true, Theme: session.ThemeLight}, got)

	ttl, err := client.TTL(ctx, "test:session:tok").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, store.Delete(ctx, "tok"))
	_, err = store.Get(ctx, "tok")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestRedisStore_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "localhost:9999", // Non-existent server for testing
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	store := session.NewRedisStore(client, "x:", time.Minute)
	ctx := context.Background()

	assert.Error(t, store.Ping(ctx))

	_, err := store.Get(ctx, "tok")
	require.Error(t, err)
	assert.NotErrorIs(t, err, session.ErrSessionNotFound)
}
