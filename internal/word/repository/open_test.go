package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wordbook/dictionary/internal/config"
)

func TestOpen_MemoryBackend(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Backend: config.BackendMemory}}
	s, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	require.IsType(t, &MemoryStore{}, s)
	require.NoError(t, s.Ping(context.Background()))
}

func TestOpen_MongoUnreachable(t *testing.T) {
	cfg := &config.Config{
		Store:   config.StoreConfig{Backend: config.BackendMongo},
		MongoDB: config.MongoDBConfig{URI: "mongodb://127.0.0.1:1/?connectTimeoutMS=100&serverSelectionTimeoutMS=100", Database: "d", Collection: "w", Timeout: 200 * time.Millisecond},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Open(ctx, cfg)
	require.Error(t, err)
}
