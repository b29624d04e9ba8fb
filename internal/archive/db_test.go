package archive

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "scripts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sample(id string, at time.Time) Entry {
	return Entry{
		ID:        id,
		City:      "Cairo",
		Landmark:  "Great Pyramid",
		Tone:      "formal",
		Length:    "short",
		WordCount: 120,
		Text:      "In Cairo stands the Great Pyramid.",
		CreatedAt: at,
	}
}

func TestSaveAndGet(t *testing.T) {
	db := openTestDB(t)
	want := sample("a1", time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, db.Save(want))

	got, err := db.Get("a1")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.City, got.City)
	assert.Equal(t, want.Landmark, got.Landmark)
	assert.Equal(t, want.WordCount, got.WordCount)
	assert.Equal(t, want.Text, got.Text)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
}

func TestGet_Missing(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSave_DuplicateID(t *testing.T) {
	db := openTestDB(t)
	e := sample("dup", time.Now().UTC())
	require.NoError(t, db.Save(e))
	assert.Error(t, db.Save(e))
}

func TestRecent_NewestFirst(t *testing.T) {
	db := openTestDB(t)
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		require.NoError(t, db.Save(sample(id, base.Add(time.Duration(i)*time.Hour))))
	}

	entries, err := db.Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "new", entries[0].ID)
	assert.Equal(t, "mid", entries[1].ID)

	// Non-positive limit falls back to the default page size.
	all, err := db.Recent(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCount(t *testing.T) {
	db := openTestDB(t)

	n, err := db.Count()
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, db.Save(sample("one", time.Now().UTC())))
	n, err = db.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMeta_Upsert(t *testing.T) {
	db := openTestDB(t)

	_, err := db.GetMeta("schema_note")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, db.SetMeta("schema_note", "v1"))
	v, err := db.GetMeta("schema_note")
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	require.NoError(t, db.SetMeta("schema_note", "v2"))
	v, err = db.GetMeta("schema_note")
	require.NoError(t, err)
	assert.Equal(t, "v2", v)
}
