package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/justsurfingit/sales-intake/internal/database"
	"github.com/justsurfingit/sales-intake/internal/models"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ApplicationLog is the append-only list of submitted applications, mirrored
// wholesale into one slot of a SlotStore after every append.
type ApplicationLog struct {
	mu     sync.RWMutex
	store  database.SlotStore
	key    string
	apps   []models.Application
	logger *zap.Logger
}

// LoadApplicationLog reads the slot once. A missing, unreadable or corrupt
// slot yields an empty log; the problem is only logged.
func LoadApplicationLog(ctx context.Context, store database.SlotStore, key string, logger *zap.Logger) *ApplicationLog {
	l := &ApplicationLog{store: store, key: key, apps: []models.Application{}, logger: logger}

	raw, found, err := store.Get(ctx, key)
	switch {
	case err != nil:
		logger.Warn("application log unreadable, starting empty", zap.String("key", key), zap.Error(err))
	case !found:
		logger.Info("application log not found, starting empty", zap.String("key", key))
	default:
		var apps []models.Application
		if err := json.Unmarshal([]byte(raw), &apps); err != nil {
			logger.Warn("application log corrupt, starting empty", zap.String("key", key), zap.Error(err))
			break
		}
		if apps != nil {
			l.apps = apps
		}
		logger.Info("application log loaded", zap.String("key", key), zap.Int("count", len(l.apps)))
	}
	return l
}

// Append adds app and rewrites the slot. The in-memory append stands even when
// the write fails; the write error is returned for the caller to report.
func (l *ApplicationLog) Append(ctx context.Context, app models.Application) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.apps = append(l.apps, app)
	data, err := json.Marshal(l.apps)
	if err != nil {
		return errors.Wrap(err, "encode application log")
	}
	return errors.Wrap(l.store.Put(ctx, l.key, string(data)), "persist application log")
}

// All returns a copy in ascending (submission) order.
func (l *ApplicationLog) All() []models.Application {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.Application{}, l.apps...)
}

func (l *ApplicationLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.apps)
}

func (l *ApplicationLog) Find(id int64) (models.Application, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, a := range l.apps {
		if a.ID == id {
			return a, true
		}
	}
	return models.Application{}, false
}
