package word

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WordEntry is a single dictionary record as persisted in the "words" collection.
type WordEntry struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Word         string             `json:"word" bson:"word"`
	Phonetic     string             `json:"phonetic,omitempty" bson:"phonetic,omitempty"`
	PartOfSpeech string             `json:"partOfSpeech" bson:"partOfSpeech"`
	Definitions  []string           `json:"definitions" bson:"definitions"`
	Examples     []string           `json:"examples" bson:"examples"`
	Synonyms     []string           `json:"synonyms" bson:"synonyms"`
	Antonyms     []string           `json:"antonyms" bson:"antonyms"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Draft is the client-submitted shape of a word, used for both add and update.
// Update is a full replacement: every editable field is taken from the draft.
type Draft struct {
	Word         string   `json:"word" validate:"notblank"`
	Phonetic     string   `json:"phonetic,omitempty"`
	PartOfSpeech string   `json:"partOfSpeech" validate:"notblank"`
	Definitions  []string `json:"definitions" validate:"required,min=1,dive,notblank"`
	Examples     []string `json:"examples,omitempty"`
	Synonyms     []string `json:"synonyms,omitempty"`
	Antonyms     []string `json:"antonyms,omitempty"`
}

// Normalize returns a copy of d with nil sequences replaced by empty ones and
// every sequence copied, so the result shares no backing arrays with d.
func (d Draft) Normalize() Draft {
	d.Definitions = cloneStrings(d.Definitions)
	d.Examples = cloneStrings(d.Examples)
	d.Synonyms = cloneStrings(d.Synonyms)
	d.Antonyms = cloneStrings(d.Antonyms)
	return d
}

// Apply copies the editable fields of d onto e. Identity and timestamps are untouched.
func (e *WordEntry) Apply(d Draft) {
	n := d.Normalize()
	e.Word = n.Word
	e.Phonetic = n.Phonetic
	e.PartOfSpeech = n.PartOfSpeech
	e.Definitions = n.Definitions
	e.Examples = n.Examples
	e.Synonyms = n.Synonyms
	e.Antonyms = n.Antonyms
}

// Draft returns the editable fields of e.
func (e *WordEntry) Draft() Draft {
	return Draft{
		Word:         e.Word,
		Phonetic:     e.Phonetic,
		PartOfSpeech: e.PartOfSpeech,
		Definitions:  e.Definitions,
		Examples:     e.Examples,
		Synonyms:     e.Synonyms,
		Antonyms:     e.Antonyms,
	}.Normalize()
}

// Clone returns a deep copy of e.
func (e *WordEntry) Clone() *WordEntry {
	c := *e
	c.Definitions = cloneStrings(e.Definitions)
	c.Examples = cloneStrings(e.Examples)
	c.Synonyms = cloneStrings(e.Synonyms)
	c.Antonyms = cloneStrings(e.Antonyms)
	return &c
}

// Matches reports whether substr occurs, ignoring case, in the word or in any definition.
func (e *WordEntry) Matches(substr string) bool {
	needle := strings.ToLower(substr)
	if strings.Contains(strings.ToLower(e.Word), needle) {
		return true
	}
	for _, def := range e.Definitions {
		if strings.Contains(strings.ToLower(def), needle) {
			return true
		}
	}
	return false
}

// Timestamp returns t in UTC truncated to the millisecond precision MongoDB stores.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// NextUpdatedAt returns the updatedAt value for a mutation happening at now,
// guaranteed to be strictly after prev.
func NextUpdatedAt(prev, now time.Time) time.Time {
	next := Timestamp(now)
	if !next.After(prev) {
		next = prev.Add(time.Millisecond)
	}
	return next
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
