package xref

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	_ "modernc.org/sqlite"
)

// Schemas for the two cross-reference tables. Rows are namespaced by vendor
// so both storefronts can share one database file.
const xrefSchema = `
CREATE TABLE IF NOT EXISTS xref_isbn (
	namespace TEXT NOT NULL,
	isbn TEXT NOT NULL,
	vendor_id TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (namespace, isbn)
);

CREATE TABLE IF NOT EXISTS xref_cover (
	namespace TEXT NOT NULL,
	vendor_id TEXT NOT NULL,
	cover_url TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (namespace, vendor_id)
);
`

// SQLiteStore is a Store persisted to a SQLite database, so cover lookups
// can short-circuit across runs. Write failures are logged, not returned:
// the Store contract treats cache writes as best-effort.
type SQLiteStore struct {
	mu        sync.RWMutex
	db        *sql.DB
	namespace string
}

// OpenSQLiteStore opens (creating if needed) the cross-reference database at
// path, scoped to the given vendor namespace.
func OpenSQLiteStore(path, namespace string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open xref database: %w", err)
	}

	if err := db.Ping(); err != nil {
		closeErr := db.Close()
		return nil, errors.Join(fmt.Errorf("connect to xref database: %w", err), closeErr)
	}

	if _, err := db.Exec(xrefSchema); err != nil {
		closeErr := db.Close()
		return nil, errors.Join(fmt.Errorf("create xref tables: %w", err), closeErr)
	}

	return &SQLiteStore{db: db, namespace: namespace}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) IdentifierForISBN(isbn string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var id string
	err := s.db.QueryRow(
		`SELECT vendor_id FROM xref_isbn WHERE namespace = ? AND isbn = ?`,
		s.namespace, isbn,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		slog.Warn("xref isbn lookup failed", "isbn", isbn, "error", err)
		return "", false
	}
	return id, true
}

func (s *SQLiteStore) SetIdentifierForISBN(isbn, id string) {
	if isbn == "" || id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO xref_isbn (namespace, isbn, vendor_id, cached_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)`,
		s.namespace, isbn, id,
	)
	if err != nil {
		slog.Warn("xref isbn write failed", "isbn", isbn, "id", id, "error", err)
	}
}

func (s *SQLiteStore) CoverURLForIdentifier(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var url string
	err := s.db.QueryRow(
		`SELECT cover_url FROM xref_cover WHERE namespace = ? AND vendor_id = ?`,
		s.namespace, id,
	).Scan(&url)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		slog.Warn("xref cover lookup failed", "id", id, "error", err)
		return "", false
	}
	return url, true
}

func (s *SQLiteStore) SetCoverURLForIdentifier(id, url string) {
	if id == "" || url == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO xref_cover (namespace, vendor_id, cover_url, cached_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)`,
		s.namespace, id, url,
	)
	if err != nil {
		slog.Warn("xref cover write failed", "id", id, "error", err)
	}
}

// Clear removes all cross-reference entries for this store's namespace.
func (s *SQLiteStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"xref_isbn", "xref_cover"} {
		query := fmt.Sprintf("DELETE FROM %s WHERE namespace = ?", table)
		if _, err := s.db.Exec(query, s.namespace); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	slog.Info("Cross-reference cache cleared", "namespace", s.namespace)
	return nil
}
