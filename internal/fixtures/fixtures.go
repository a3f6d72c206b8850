// Package fixtures loads word drafts into a store and exports stored words
// in the same JSON shape, so an export can be seeded back.
package fixtures

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/wordbook/dictionary/internal/word"
	"github.com/wordbook/dictionary/internal/word/repository"
)

// Report summarises a Seed run.
type Report struct {
	Added   []string `json:"added"`
	Skipped []string `json:"skipped"`
	Total   int      `json:"total"`
}

// Decode reads a JSON array of drafts.
func Decode(r io.Reader) ([]word.Draft, error) {
	var drafts []word.Draft
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&drafts); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return drafts, nil
}

// Encode writes entries as a JSON array of drafts.
func Encode(w io.Writer, entries []*word.WordEntry) error {
	drafts := make([]word.Draft, 0, len(entries))
	for _, e := range entries {
		drafts = append(drafts, e.Draft())
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(drafts)
}

// Seed creates every draft whose word text is not already stored. Matching
// is exact, so "Aurora" and "aurora" are distinct words. All drafts are
// validated before anything is written.
func Seed(ctx context.Context, store repository.Store, drafts []word.Draft) (Report, error) {
	for i, d := range drafts {
		if err := d.Validate(); err != nil {
			return Report{}, fmt.Errorf("fixture %d (%q): %w", i, d.Word, err)
		}
	}
	existing, err := store.ListAll(ctx)
	if err != nil {
		return Report{}, err
	}
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[e.Word] = true
	}

	rep := Report{Added: []string{}, Skipped: []string{}}
	for _, d := range drafts {
		if seen[d.Word] {
			rep.Skipped = append(rep.Skipped, d.Word)
			continue
		}
		if _, err := store.Create(ctx, d); err != nil {
			return rep, fmt.Errorf("seed %q: %w", d.Word, err)
		}
		seen[d.Word] = true
		rep.Added = append(rep.Added, d.Word)
	}
	rep.Total = len(existing) + len(rep.Added)
	return rep, nil
}

// Export writes every stored entry, ordered by word, to w.
func Export(ctx context.Context, store repository.Store, w io.Writer) (int, error) {
	entries, err := store.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(entries), Encode(w, entries)
}
