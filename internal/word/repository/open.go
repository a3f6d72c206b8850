package repository

import (
	"context"
	"time"

	"github.com/wordbook/dictionary/internal/config"
	"github.com/wordbook/dictionary/internal/database"
	"github.com/wordbook/dictionary/pkg/logger"
)

var log = logger.Component("store")

// Open builds the Store selected by cfg.Store.Backend. The Mongo backend
// retries the initial connection and ensures indexes before returning.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg.Store.Backend == config.BackendMemory {
		log.Warnf("using in-memory word store; data is lost on restart")
		return NewMemoryStore(), nil
	}

	client, err := database.ConnectWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, database.Retry{
		Attempts: 5,
		Backoff:  time.Second,
		OnFailure: func(attempt int, err error) {
			log.Warnf("attempt %d/5: failed to connect to MongoDB: %v", attempt, err)
		},
	})
	if err != nil {
		return nil, err
	}
	store := NewMongoStore(client, cfg.MongoDB.Database, cfg.MongoDB.Collection)
	ictx, cancel := context.WithTimeout(ctx, cfg.MongoDB.Timeout)
	defer cancel()
	if err := store.EnsureIndexes(ictx); err != nil {
		_ = store.Close(context.Background())
		return nil, err
	}
	log.Infof("connected to MongoDB %s.%s", cfg.MongoDB.Database, cfg.MongoDB.Collection)
	return store, nil
}
