package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"weathermon/internal/reading"
)

const schema = `
CREATE TABLE IF NOT EXISTS readings (
  id            INTEGER PRIMARY KEY AUTOINCREMENT,
  ts            TEXT    NOT NULL,
  temperature_c REAL    NOT NULL,
  temperature_f REAL    NOT NULL,
  humidity_pct  REAL    NOT NULL,
  aqi           INTEGER NOT NULL,
  aqi_status    TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_readings_id ON readings(id);
`

const insertReadingSQL = `
INSERT INTO readings (ts, temperature_c, temperature_f, humidity_pct, aqi, aqi_status)
VALUES (?, ?, ?, ?, ?, ?);
`

// Keep only the newest `limit` rows.
const trimReadingsSQL = `
DELETE FROM readings
WHERE id NOT IN (SELECT id FROM readings ORDER BY id DESC LIMIT ?);
`

const selectReadingsSQL = `
SELECT ts, temperature_c, temperature_f, humidity_pct, aqi, aqi_status
FROM readings
ORDER BY id ASC;
`

// SQLiteStore is the alternate history backend, same cap semantics as
// FileStore over a single readings table.
type SQLiteStore struct {
	db    *sql.DB
	limit int
}

// NewSQLiteStore wraps an open database and creates the schema. Used
// directly by tests with an in-memory database.
func NewSQLiteStore(db *sql.DB, limit int) (*SQLiteStore, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db, limit: limit}, nil
}

// OpenSQLite opens (creating if needed) a file-backed store at path.
func OpenSQLite(path string, limit int) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	// busy_timeout helps with "database is locked" if another process pokes
	// at the file; WAL keeps reads cheap while the monitor writes.
	params := []string{
		"_foreign_keys=on",
		"_busy_timeout=5000",
		"_journal_mode=WAL",
	}
	dsn := fmt.Sprintf("file:%s?%s", path, strings.Join(params, "&"))

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	s, err := NewSQLiteStore(db, limit)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Append(r reading.Reading) error {
	_, err := s.db.Exec(insertReadingSQL,
		r.Timestamp, r.TemperatureC, r.TemperatureF, r.Humidity, r.AQI, r.AQIStatus)
	if err != nil {
		return fmt.Errorf("insert reading: %w", err)
	}
	if _, err := s.db.Exec(trimReadingsSQL, s.limit); err != nil {
		return fmt.Errorf("trim readings: %w", err)
	}
	return nil
}

func (s *SQLiteStore) LoadAll() ([]reading.Reading, error) {
	rows, err := s.db.Query(selectReadingsSQL)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close readings rows", "error", err)
		}
	}()

	var out []reading.Reading
	for rows.Next() {
		var r reading.Reading
		if err := rows.Scan(&r.Timestamp, &r.TemperatureC, &r.TemperatureF, &r.Humidity, &r.AQI, &r.AQIStatus); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
