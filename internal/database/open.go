package database

import (
	"context"

	"github.com/justsurfingit/sales-intake/internal/config"
	"github.com/pkg/errors"
)

// Open returns the slot store selected by cfg.StorageBackend and a func
// releasing its connection.
func Open(ctx context.Context, cfg config.Config) (SlotStore, func() error, error) {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		db, err := Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, errors.Wrap(err, "unwrap sql.DB")
		}
		return NewGormSlotStore(db), sqlDB.Close, nil
	case config.BackendRedis:
		client, err := ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisSlotStore(client), client.Close, nil
	case config.BackendMemory:
		return NewMemorySlotStore(), func() error { return nil }, nil
	default:
		return nil, nil, errors.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
