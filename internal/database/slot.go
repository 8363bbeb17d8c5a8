package database

import (
	"context"
	"sync"

	"github.com/justsurfingit/sales-intake/internal/models"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SlotStore holds named string values; the application log lives in one slot.
type SlotStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Put(ctx context.Context, key, value string) error
}

type GormSlotStore struct {
	DB *gorm.DB
}

func NewGormSlotStore(db *gorm.DB) *GormSlotStore {
	return &GormSlotStore{DB: db}
}

func (s *GormSlotStore) Get(ctx context.Context, key string) (string, bool, error) {
	var slot models.Slot
	err := s.DB.WithContext(ctx).Where("key = ?", key).First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "read slot %s", key)
	}
	return slot.Value, true, nil
}

func (s *GormSlotStore) Put(ctx context.Context, key, value string) error {
	slot := models.Slot{Key: key, Value: value}
	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
	return errors.Wrapf(err, "write slot %s", key)
}

type RedisSlotStore struct {
	Client *redis.Client
}

func NewRedisSlotStore(client *redis.Client) *RedisSlotStore {
	return &RedisSlotStore{Client: client}
}

func (s *RedisSlotStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "read slot %s", key)
	}
	return v, true, nil
}

func (s *RedisSlotStore) Put(ctx context.Context, key, value string) error {
	return errors.Wrapf(s.Client.Set(ctx, key, value, 0).Err(), "write slot %s", key)
}

// MemorySlotStore keeps slots in process memory. Nothing survives a restart.
type MemorySlotStore struct {
	mu    sync.RWMutex
	slots map[string]string
}

func NewMemorySlotStore() *MemorySlotStore {
	return &MemorySlotStore{slots: make(map[string]string)}
}

func (s *MemorySlotStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.slots[key]
	return v, ok, nil
}

func (s *MemorySlotStore) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = value
	return nil
}
