package repository

import (
	"context"

	"github.com/wordbook/dictionary/internal/word"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store persists word entries. Implementations return copies; callers may
// keep or modify the returned entries without affecting stored state.
type Store interface {
	Create(ctx context.Context, d word.Draft) (*word.WordEntry, error)
	GetByID(ctx context.Context, id string) (*word.WordEntry, error)
	// Update replaces every editable field with the draft's values.
	Update(ctx context.Context, id string, d word.Draft) (*word.WordEntry, error)
	// Delete reports whether a record was removed. Missing or malformed ids
	// yield false without an error.
	Delete(ctx context.Context, id string) (bool, error)
	// ListAll returns every entry ordered by word, ties by insertion order.
	ListAll(ctx context.Context) ([]*word.WordEntry, error)
	// FindMatching returns entries whose word or any definition contains
	// substr (case-insensitive), ordered like ListAll and capped at limit
	// when limit > 0.
	FindMatching(ctx context.Context, substr string, limit int) ([]*word.WordEntry, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// ParseID converts a hex identifier into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, word.ErrInvalidID
	}
	return oid, nil
}
