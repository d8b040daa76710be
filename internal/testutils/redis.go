package testutils

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestRedisConfig holds configuration for test Redis instances
type TestRedisConfig struct {
	// Addr of an already running Redis. When empty a container is started.
	Addr string
	DB   int

	// MaxMemory, when set, starts the container with a maxmemory limit and
	// noeviction so writes past it fail with OOM.
	MaxMemory string
}

// DefaultTestRedisConfig uses TEST_REDIS_ADDR when set
func DefaultTestRedisConfig() *TestRedisConfig {
	return &TestRedisConfig{
		Addr: os.Getenv("TEST_REDIS_ADDR"),
		DB:   15, // Use DB 15 for tests to avoid conflicts
	}
}

// CreateTestRedisClient returns a client to a clean Redis, skipping the test
// if neither a configured Redis nor Docker is available.
func CreateTestRedisClient(t *testing.T, cfg *TestRedisConfig) redis.UniversalClient {
	t.Helper()
	if cfg == nil {
		cfg = DefaultTestRedisConfig()
	}

	addr := cfg.Addr
	if addr == "" || cfg.MaxMemory != "" {
		addr = startRedisContainer(t, cfg.MaxMemory)
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for testing: %v", err)
	}

	err := client.FlushDB(ctx).Err()
	require.NoError(t, err, "Failed to flush test Redis database")

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})

	return client
}

// CreateTestRedisClientOrSkip creates a Redis client or skips the test
func CreateTestRedisClientOrSkip(t *testing.T) redis.UniversalClient {
	t.Helper()
	return CreateTestRedisClient(t, nil)
}

func startRedisContainer(t *testing.T, maxMemory string) string {
	t.Helper()
	ctx := context.Background()

	cmd := []string{"redis-server", "--save", "", "--appendonly", "no"}
	if maxMemory != "" {
		cmd = append(cmd, "--maxmemory", maxMemory, "--maxmemory-policy", "noeviction")
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd:          cmd,
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("Docker not available for Redis container: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err, "Failed to resolve Redis container endpoint")
	return endpoint
}
