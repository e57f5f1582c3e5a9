package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Xausdorf/tenant-ledger/internal/domain/repository"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/config"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/dynamo"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/memory"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/postgres"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/redis"
	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/singletable"
)

// Open builds the account repository for cfg.StorageBackend. The returned
// closer releases the backend's connections and is never nil on success.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repository.AccountRepository, func(), error) {
	logger = logger.With(slog.String("backend", cfg.StorageBackend))

	switch cfg.StorageBackend {
	case config.BackendMemory:
		logger.Warn("using in-memory storage, data is lost on exit")
		return memory.NewStore(), func() {}, nil

	case config.BackendDynamoDB:
		client, err := dynamo.NewClient(ctx, dynamo.ClientConfig{
			Region:          cfg.AWSRegion,
			Endpoint:        cfg.DynamoDBEndpoint,
			AccessKeyID:     cfg.DynamoDBAccessKeyID,
			SecretAccessKey: cfg.DynamoDBSecretAccessKey,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("dynamodb client: %w", err)
		}
		if cfg.StorageBootstrap {
			if err := dynamo.EnsureTable(ctx, client, cfg.DynamoDBTable); err != nil {
				return nil, nil, fmt.Errorf("ensure table %s: %w", cfg.DynamoDBTable, err)
			}
		}
		logger.Info("storage ready", slog.String("table", cfg.DynamoDBTable))
		return singletable.NewRepository(dynamo.NewTable(client, cfg.DynamoDBTable)), func() {}, nil

	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
			URL:             cfg.DatabaseURL,
			MaxConns:        cfg.DBMaxConns,
			MinConns:        cfg.DBMinConns,
			MaxConnLifetime: cfg.DBMaxConnLifetime,
			MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("postgres pool: %w", err)
		}
		if cfg.StorageBootstrap {
			if err := postgres.EnsureSchema(ctx, pool); err != nil {
				pool.Close()
				return nil, nil, fmt.Errorf("ensure schema: %w", err)
			}
		}
		logger.Info("storage ready")
		return singletable.NewRepository(postgres.NewTable(pool)), pool.Close, nil

	case config.BackendRedis:
		client, closer, err := redis.NewClient(ctx, redis.ClientConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("redis client: %w", err)
		}
		logger.Info("storage ready", slog.String("addr", cfg.RedisAddr))
		return singletable.NewRepository(redis.NewTable(client, redis.DefaultKeyPrefix)), closer, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
