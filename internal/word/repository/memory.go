package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/wordbook/dictionary/internal/word"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryRecord struct {
	entry *word.WordEntry
	seq   uint64
}

// MemoryStore is an in-process Store used by tests and by local runs without MongoDB.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[primitive.ObjectID]*memoryRecord
	seq     uint64
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[primitive.ObjectID]*memoryRecord), now: time.Now}
}

func (m *MemoryStore) Create(ctx context.Context, d word.Draft) (*word.WordEntry, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	ts := word.Timestamp(m.now())
	e := &word.WordEntry{ID: primitive.NewObjectID(), CreatedAt: ts, UpdatedAt: ts}
	e.Apply(d)
	m.seq++
	m.records[e.ID] = &memoryRecord{entry: e, seq: m.seq}
	return e.Clone(), nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id string) (*word.WordEntry, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.records[oid]
	if !ok {
		return nil, word.ErrNotFound
	}
	return r.entry.Clone(), nil
}

func (m *MemoryStore) Update(ctx context.Context, id string, d word.Draft) (*word.WordEntry, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[oid]
	if !ok {
		return nil, word.ErrNotFound
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	r.entry.Apply(d)
	r.entry.UpdatedAt = word.NextUpdatedAt(r.entry.UpdatedAt, m.now())
	return r.entry.Clone(), nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := ParseID(id)
	if err != nil {
		return false, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[oid]; !ok {
		return false, nil
	}
	delete(m.records, oid)
	return true, nil
}

func (m *MemoryStore) ListAll(ctx context.Context) ([]*word.WordEntry, error) {
	return m.collect(func(*word.WordEntry) bool { return true }, 0), nil
}

func (m *MemoryStore) FindMatching(ctx context.Context, substr string, limit int) ([]*word.WordEntry, error) {
	return m.collect(func(e *word.WordEntry) bool { return e.Matches(substr) }, limit), nil
}

// Ping always succeeds; the memory store has no external dependency.
func (m *MemoryStore) Ping(ctx context.Context) error { return nil }

func (m *MemoryStore) Close(ctx context.Context) error { return nil }

// Len returns the number of stored entries.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

func (m *MemoryStore) collect(keep func(*word.WordEntry) bool, limit int) []*word.WordEntry {
	m.mu.RLock()
	matched := make([]*memoryRecord, 0, len(m.records))
	for _, r := range m.records {
		if keep(r.entry) {
			matched = append(matched, r)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].entry.Word != matched[j].entry.Word {
			return matched[i].entry.Word < matched[j].entry.Word
		}
		return matched[i].seq < matched[j].seq
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	out := make([]*word.WordEntry, 0, len(matched))
	for _, r := range matched {
		out = append(out, r.entry.Clone())
	}
	m.mu.RUnlock()
	return out
}
