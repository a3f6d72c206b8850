package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/wordbook/dictionary/internal/word"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// TextIndexName names the text index over word and definitions.
const TextIndexName = "word_text_definitions_text"

// byWord orders results ascending by word; _id breaks ties in insertion order.
var byWord = bson.D{{Key: "word", Value: 1}, {Key: "_id", Value: 1}}

// MongoStore implements Store on a MongoDB collection. Identifiers are ObjectIDs.
type MongoStore struct {
	client *mongo.Client
	col    *mongo.Collection
	now    func() time.Time
}

// NewMongoStore binds the store to database/collection on client. The store
// owns the client from here on: Close disconnects it.
func NewMongoStore(client *mongo.Client, database, collection string) *MongoStore {
	return &MongoStore{
		client: client,
		col:    client.Database(database).Collection(collection),
		now:    time.Now,
	}
}

// EnsureIndexes creates the word index and the word/definitions text index.
func (m *MongoStore) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "word", Value: 1}}},
		{
			Keys:    bson.D{{Key: "word", Value: "text"}, {Key: "definitions", Value: "text"}},
			Options: options.Index().SetName(TextIndexName),
		},
	}
	if _, err := m.col.Indexes().CreateMany(ctx, models); err != nil {
		return word.StorageError("create indexes", err)
	}
	return nil
}

func (m *MongoStore) Create(ctx context.Context, d word.Draft) (*word.WordEntry, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	ts := word.Timestamp(m.now())
	e := &word.WordEntry{ID: primitive.NewObjectID(), CreatedAt: ts, UpdatedAt: ts}
	e.Apply(d)
	if _, err := m.col.InsertOne(ctx, e); err != nil {
		return nil, word.StorageError("insert word", err)
	}
	return e, nil
}

func (m *MongoStore) GetByID(ctx context.Context, id string) (*word.WordEntry, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return m.findOne(ctx, oid)
}

func (m *MongoStore) Update(ctx context.Context, id string, d word.Draft) (*word.WordEntry, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	current, err := m.findOne(ctx, oid)
	if err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	n := d.Normalize()
	set := bson.M{
		"word":         n.Word,
		"partOfSpeech": n.PartOfSpeech,
		"definitions":  n.Definitions,
		"examples":     n.Examples,
		"synonyms":     n.Synonyms,
		"antonyms":     n.Antonyms,
		"updatedAt":    word.NextUpdatedAt(current.UpdatedAt, m.now()),
	}
	update := bson.M{"$set": set}
	if n.Phonetic != "" {
		set["phonetic"] = n.Phonetic
	} else {
		update["$unset"] = bson.M{"phonetic": ""}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated word.WordEntry
	err = m.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// removed between the read and the write
			return nil, word.ErrNotFound
		}
		return nil, word.StorageError("update word", err)
	}
	return normalize(&updated), nil
}

func (m *MongoStore) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := ParseID(id)
	if err != nil {
		return false, nil
	}
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, word.StorageError("delete word", err)
	}
	return res.DeletedCount > 0, nil
}

func (m *MongoStore) ListAll(ctx context.Context) ([]*word.WordEntry, error) {
	return m.find(ctx, "list words", bson.M{}, options.Find().SetSort(byWord))
}

func (m *MongoStore) FindMatching(ctx context.Context, substr string, limit int) ([]*word.WordEntry, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(substr), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"word": pattern},
		bson.M{"definitions": pattern},
	}}
	opts := options.Find().SetSort(byWord)
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return m.find(ctx, "search words", filter, opts)
}

func (m *MongoStore) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return word.StorageError("ping", err)
	}
	return nil
}

func (m *MongoStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoStore) findOne(ctx context.Context, oid primitive.ObjectID) (*word.WordEntry, error) {
	var e word.WordEntry
	if err := m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, word.ErrNotFound
		}
		return nil, word.StorageError("find word", err)
	}
	return normalize(&e), nil
}

func (m *MongoStore) find(ctx context.Context, op string, filter interface{}, opts *options.FindOptions) ([]*word.WordEntry, error) {
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, word.StorageError(op, err)
	}
	defer cur.Close(ctx)
	out := []*word.WordEntry{}
	for cur.Next(ctx) {
		var e word.WordEntry
		if err := cur.Decode(&e); err != nil {
			return nil, word.StorageError(op, err)
		}
		out = append(out, normalize(&e))
	}
	if err := cur.Err(); err != nil {
		return nil, word.StorageError(op, err)
	}
	return out, nil
}

// normalize replaces sequences missing from older documents with empty ones.
func normalize(e *word.WordEntry) *word.WordEntry {
	e.Apply(e.Draft())
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return e
}
