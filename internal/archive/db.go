// Package archive provides SQLite-based storage for generated scripts.
// The archive sits outside the composition core: a failed write never
// fails a compose call.
package archive

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Entry is one archived script.
type Entry struct {
	ID        string    `db:"id" json:"id"`
	City      string    `db:"city" json:"city"`
	Landmark  string    `db:"landmark" json:"landmark"`
	Tone      string    `db:"tone" json:"tone"`
	Length    string    `db:"length" json:"length"`
	WordCount int       `db:"word_count" json:"word_count"`
	Text      string    `db:"text" json:"text"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ErrNotFound reports a missing archive entry.
var ErrNotFound = errors.New("archive entry not found")

// DB wraps a SQLite connection for script storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scripts (
		id TEXT PRIMARY KEY,
		city TEXT NOT NULL,
		landmark TEXT NOT NULL,
		tone TEXT NOT NULL,
		length TEXT NOT NULL,
		word_count INTEGER NOT NULL,
		text TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS archive_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scripts_created ON scripts(created_at);
	CREATE INDEX IF NOT EXISTS idx_scripts_city ON scripts(city);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Save writes one entry.
func (db *DB) Save(e Entry) error {
	_, err := db.conn.NamedExec(`
		INSERT INTO scripts (id, city, landmark, tone, length, word_count, text, created_at)
		VALUES (:id, :city, :landmark, :tone, :length, :word_count, :text, :created_at)`, e)
	return err
}

// Get returns one entry by ID.
func (db *DB) Get(id string) (Entry, error) {
	var e Entry
	err := db.conn.Get(&e, `SELECT * FROM scripts WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	return e, err
}

// Recent returns the newest entries, newest first.
func (db *DB) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	var entries []Entry
	err := db.conn.Select(&entries,
		`SELECT * FROM scripts ORDER BY created_at DESC, id LIMIT ?`, limit)
	return entries, err
}

// Count returns the number of archived scripts.
func (db *DB) Count() (int, error) {
	var n int
	err := db.conn.Get(&n, `SELECT COUNT(*) FROM scripts`)
	return n, err
}

// SetMeta stores a key/value metadata pair.
func (db *DB) SetMeta(key, value string) error {
	_, err := db.conn.Exec(
		`INSERT INTO archive_meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, `SELECT value FROM archive_meta WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return value, err
}
