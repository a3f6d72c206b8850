package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wordbook/dictionary/internal/word"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func draft(w string, defs ...string) word.Draft {
	return word.Draft{Word: w, PartOfSpeech: "Noun", Definitions: defs}
}

func words(list []*word.WordEntry) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.Word)
	}
	return out
}

// runStoreContract exercises the behaviour every Store implementation must share.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("create then get round-trips", func(t *testing.T) {
		s := newStore(t)
		d := word.Draft{
			Word:         "Serendipity",
			Phonetic:     "/ˌserənˈdɪpɪti/",
			PartOfSpeech: "Noun",
			Definitions:  []string{"The occurrence of events by chance in a happy way."},
			Examples:     []string{"We found the restaurant by pure serendipity."},
			Synonyms:     []string{"chance", "luck"},
		}
		created, err := s.Create(ctx, d)
		require.NoError(t, err)
		require.False(t, created.ID.IsZero())
		require.False(t, created.CreatedAt.IsZero())
		require.Equal(t, created.CreatedAt, created.UpdatedAt)
		require.NotNil(t, created.Antonyms)

		got, err := s.GetByID(ctx, created.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, created, got)
		assert.Equal(t, d.Normalize(), got.Draft())
	})

	t.Run("invalid drafts are rejected and not persisted", func(t *testing.T) {
		s := newStore(t)
		for _, d := range []word.Draft{
			{PartOfSpeech: "Noun", Definitions: []string{"x"}},
			{Word: "x", Definitions: []string{"x"}},
			{Word: "x", PartOfSpeech: "Noun"},
		} {
			_, err := s.Create(ctx, d)
			require.ErrorIs(t, err, word.ErrValidation)
		}
		all, err := s.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("get distinguishes not found from invalid id", func(t *testing.T) {
		s := newStore(t)
		_, err := s.GetByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, word.ErrNotFound)
		_, err = s.GetByID(ctx, "not-an-id")
		assert.ErrorIs(t, err, word.ErrInvalidID)
	})

	t.Run("update replaces editable fields and bumps updatedAt", func(t *testing.T) {
		s := newStore(t)
		created, err := s.Create(ctx, word.Draft{
			Word: "Luminous", Phonetic: "/ˈluːmɪnəs/", PartOfSpeech: "Adjective",
			Definitions: []string{"Full of or shedding light."}, Synonyms: []string{"bright"},
		})
		require.NoError(t, err)

		next := word.Draft{Word: "Luminous", PartOfSpeech: "Adjective", Definitions: []string{"Bright or shining."}}
		updated, err := s.Update(ctx, created.ID.Hex(), next)
		require.NoError(t, err)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)

		got, err := s.GetByID(ctx, created.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, next.Normalize(), got.Draft())
		assert.Empty(t, got.Phonetic)
		assert.Empty(t, got.Synonyms)
		assert.Equal(t, updated.UpdatedAt, got.UpdatedAt)
	})

	t.Run("update of a missing id leaves the store unchanged", func(t *testing.T) {
		s := newStore(t)
		created, err := s.Create(ctx, draft("Aurora", "Northern lights."))
		require.NoError(t, err)

		_, err = s.Update(ctx, primitive.NewObjectID().Hex(), draft("Other", "x"))
		require.ErrorIs(t, err, word.ErrNotFound)

		all, err := s.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, created, all[0])
	})

	t.Run("update validates the draft", func(t *testing.T) {
		s := newStore(t)
		created, err := s.Create(ctx, draft("Aurora", "Northern lights."))
		require.NoError(t, err)
		_, err = s.Update(ctx, created.ID.Hex(), word.Draft{Word: "Aurora"})
		require.ErrorIs(t, err, word.ErrValidation)
		got, err := s.GetByID(ctx, created.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s := newStore(t)
		created, err := s.Create(ctx, draft("Solitude", "The state of being alone."))
		require.NoError(t, err)

		ok, err := s.Delete(ctx, created.ID.Hex())
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = s.Delete(ctx, created.ID.Hex())
		require.NoError(t, err)
		assert.False(t, ok)
		ok, err = s.Delete(ctx, "garbage")
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = s.GetByID(ctx, created.ID.Hex())
		assert.ErrorIs(t, err, word.ErrNotFound)
	})

	t.Run("list orders by word then insertion", func(t *testing.T) {
		s := newStore(t)
		first, err := s.Create(ctx, draft("beta", "first beta"))
		require.NoError(t, err)
		_, err = s.Create(ctx, draft("alpha", "a"))
		require.NoError(t, err)
		second, err := s.Create(ctx, draft("beta", "second beta"))
		require.NoError(t, err)
		_, err = s.Create(ctx, draft("Zeta", "z"))
		require.NoError(t, err)

		all, err := s.ListAll(ctx)
		require.NoError(t, err)
		// byte-wise ordering: upper case sorts before lower case
		assert.Equal(t, []string{"Zeta", "alpha", "beta", "beta"}, words(all))
		assert.Equal(t, first.ID, all[2].ID)
		assert.Equal(t, second.ID, all[3].ID)
	})

	t.Run("find matching is a case-insensitive substring match", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Create(ctx, draft("Ephemeral", "Lasting for a very short time."))
		require.NoError(t, err)
		_, err = s.Create(ctx, draft("Luminous", "Full of or shedding light."))
		require.NoError(t, err)
		_, err = s.Create(ctx, draft("Petrichor", "A pleasant smell after rain."))
		require.NoError(t, err)

		got, err := s.FindMatching(ctx, "lumi", 50)
		require.NoError(t, err)
		assert.Equal(t, []string{"Luminous"}, words(got))

		got, err = s.FindMatching(ctx, "SHORT", 50)
		require.NoError(t, err)
		assert.Equal(t, []string{"Ephemeral"}, words(got))

		got, err = s.FindMatching(ctx, "in", 50)
		require.NoError(t, err)
		assert.Equal(t, []string{"Ephemeral", "Luminous", "Petrichor"}, words(got))

		got, err = s.FindMatching(ctx, "zzz", 50)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("find matching treats the query literally", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Create(ctx, draft("Mellifluous", "(of a voice) sweet or musical."))
		require.NoError(t, err)
		_, err = s.Create(ctx, draft("Sonorous", "imposingly deep and full"))
		require.NoError(t, err)

		got, err := s.FindMatching(ctx, "(of", 50)
		require.NoError(t, err)
		assert.Equal(t, []string{"Mellifluous"}, words(got))

		got, err = s.FindMatching(ctx, ".*", 50)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("find matching respects the limit", func(t *testing.T) {
		s := newStore(t)
		for i := 0; i < 60; i++ {
			_, err := s.Create(ctx, draft(fmt.Sprintf("word%02d", 59-i), "common definition"))
			require.NoError(t, err)
		}
		got, err := s.FindMatching(ctx, "common", 50)
		require.NoError(t, err)
		require.Len(t, got, 50)
		assert.Equal(t, "word00", got[0].Word)
		assert.Equal(t, "word49", got[49].Word)
	})

	t.Run("returned entries are snapshots", func(t *testing.T) {
		s := newStore(t)
		created, err := s.Create(ctx, draft("Ineffable", "Too great to be expressed."))
		require.NoError(t, err)
		created.Definitions[0] = "mutated"
		got, err := s.GetByID(ctx, created.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "Too great to be expressed.", got.Definitions[0])
	})

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, newStore(t).Ping(ctx))
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, func(t *testing.T) Store { return NewMemoryStore() })
}

func TestMemoryStore_Len(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Create(context.Background(), draft("Aurora", "lights"))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestParseID(t *testing.T) {
	oid := primitive.NewObjectID()
	got, err := ParseID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)

	_, err = ParseID("1234")
	assert.True(t, errors.Is(err, word.ErrInvalidID))
}
