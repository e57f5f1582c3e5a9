//go:build integration

package integration_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Xausdorf/tenant-ledger/internal/domain/repository"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/config"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/storage"
)

const startupTimeout = 2 * time.Minute

func startContainer(t *testing.T, req testcontainers.ContainerRequest, port string) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = c.Terminate(ctx)
	})

	host, err := c.Host(ctx)
	require.NoError(t, err)
	mapped, err := c.MappedPort(ctx, port)
	require.NoError(t, err)

	return fmt.Sprintf("%s:%s", host, mapped.Port())
}

func openRepository(t *testing.T, cfg *config.Config) repository.AccountRepository {
	t.Helper()
	cfg.StorageBootstrap = true

	repo, closer, err := storage.Open(context.Background(), cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(closer)
	return repo
}

func postgresRepository(t *testing.T) repository.AccountRepository {
	addr := startContainer(t, testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "ledger",
			"POSTGRES_PASSWORD": "ledger_secret",
			"POSTGRES_DB":       "ledger",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}, "5432/tcp")

	return openRepository(t, &config.Config{
		StorageBackend: config.BackendPostgres,
		DatabaseURL:    fmt.Sprintf("postgres://ledger:ledger_secret@%s/ledger?sslmode=disable", addr),
	})
}

func redisRepository(t *testing.T) repository.AccountRepository {
	addr := startContainer(t, testcontainers.ContainerRequest{
		Image:        "redis:7.0.5",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}, "6379/tcp")

	return openRepository(t, &config.Config{
		StorageBackend: config.BackendRedis,
		RedisAddr:      addr,
	})
}

func dynamoRepository(t *testing.T) repository.AccountRepository {
	addr := startContainer(t, testcontainers.ContainerRequest{
		Image:        "amazon/dynamodb-local:2.5.2",
		ExposedPorts: []string{"8000/tcp"},
		Cmd:          []string{"-jar", "DynamoDBLocal.jar", "-inMemory"},
		WaitingFor:   wait.ForListeningPort("8000/tcp").WithStartupTimeout(60 * time.Second),
	}, "8000/tcp")

	return openRepository(t, &config.Config{
		StorageBackend:          config.BackendDynamoDB,
		DynamoDBTable:           "BankManager",
		DynamoDBEndpoint:        "http://" + addr,
		AWSRegion:               "us-west-2",
		DynamoDBAccessKeyID:     "local",
		DynamoDBSecretAccessKey: "local",
	})
}
