package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chris-regnier/devrewind/internal/storage"
	_ "github.com/tursodatabase/go-libsql"
)

// Store implements storage.Storage using SQLite via Turso/libSQL.
type Store struct {
	db *sql.DB
}

// New creates a new SQLite storage backend.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}

	dbPath := filepath.Join(dataDir, "devrewind.db")
	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", storage.ErrStorage, err)
	}

	// Enable WAL mode
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling WAL mode: %v", storage.ErrStorage, err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS archives (
			id         TEXT PRIMARY KEY,
			label      TEXT NOT NULL DEFAULT '',
			year       INTEGER NOT NULL CHECK(year > 0),
			source     TEXT NOT NULL,
			seed       INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			dataset    TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_archives_created_at ON archives(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_archives_year ON archives(year);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("%w: creating schema: %v", storage.ErrStorage, err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists a new archive.
func (s *Store) Save(a storage.Archive) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}

	data, err := json.Marshal(a.Dataset)
	if err != nil {
		return fmt.Errorf("%w: encoding dataset: %v", storage.ErrStorage, err)
	}

	var exists int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM archives WHERE id = ?", a.ID).Scan(&exists); err != nil {
		return fmt.Errorf("%w: checking archive: %v", storage.ErrStorage, err)
	}
	if exists > 0 {
		return fmt.Errorf("%w: %s", storage.ErrConflict, a.ID)
	}

	_, err = s.db.Exec(
		"INSERT INTO archives (id, label, year, source, seed, created_at, dataset) VALUES (?, ?, ?, ?, ?, ?, ?)",
		a.ID,
		a.Label,
		a.Dataset.Year,
		a.Dataset.Source,
		a.Dataset.Seed,
		a.CreatedAt.UTC().Format(time.RFC3339),
		string(data),
	)
	if err != nil {
		return fmt.Errorf("%w: inserting archive: %v", storage.ErrStorage, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanArchive(row scanner) (storage.Archive, error) {
	var a storage.Archive
	var createdStr, data string
	if err := row.Scan(&a.ID, &a.Label, &createdStr, &data); err != nil {
		return storage.Archive{}, err
	}

	var err error
	a.CreatedAt, err = time.Parse(time.RFC3339, createdStr)
	if err != nil {
		return storage.Archive{}, fmt.Errorf("%w: parsing created_at: %v", storage.ErrStorage, err)
	}
	if err := json.Unmarshal([]byte(data), &a.Dataset); err != nil {
		return storage.Archive{}, fmt.Errorf("%w: decoding dataset: %v", storage.ErrStorage, err)
	}
	return a, nil
}

// Get retrieves an archive by ID.
func (s *Store) Get(id string) (storage.Archive, error) {
	row := s.db.QueryRow(
		"SELECT id, label, created_at, dataset FROM archives WHERE id = ?", id,
	)
	a, err := scanArchive(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return storage.Archive{}, storage.ErrNotFound
		}
		return storage.Archive{}, fmt.Errorf("%w: querying archive: %v", storage.ErrStorage, err)
	}
	return a, nil
}

// List returns archives matching the given options, newest first.
func (s *Store) List(opts storage.ListOptions) ([]storage.Archive, error) {
	query := "SELECT id, label, created_at, dataset FROM archives"
	var where []string
	var args []interface{}

	if opts.Year != 0 {
		where = append(where, "year = ?")
		args = append(args, opts.Year)
	}
	if opts.Source != "" {
		where = append(where, "source = ?")
		args = append(args, opts.Source)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	query += " ORDER BY created_at DESC"

	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
	} else if opts.Offset > 0 {
		query += " LIMIT -1"
	}
	if opts.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", opts.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listing archives: %v", storage.ErrStorage, err)
	}
	defer rows.Close()

	archives := []storage.Archive{}
	for rows.Next() {
		a, err := scanArchive(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning row: %v", storage.ErrStorage, err)
		}
		archives = append(archives, a)
	}

	return archives, rows.Err()
}

// Delete removes an archive permanently.
func (s *Store) Delete(id string) error {
	result, err := s.db.Exec("DELETE FROM archives WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%w: deleting archive: %v", storage.ErrStorage, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking delete result: %v", storage.ErrStorage, err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
