package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nattapol/interview-insights/analysis"
	_ "modernc.org/sqlite"
)

// StoredAnalysis is a completed analysis persisted by file ID.
type StoredAnalysis struct {
	FileID    string
	Model     string
	Result    analysis.Result
	CreatedAt time.Time
}

// ResultStore defines the interface for analysis persistence.
type ResultStore interface {
	Get(fileID string) (*StoredAnalysis, error)
	Save(stored *StoredAnalysis) error
	GetAll() ([]StoredAnalysis, error)
	Delete(fileID string) error
	Close() error
}

// SQLiteStore implements ResultStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStore opens (creating if needed) the analysis archive at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.init(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) init() error {
	query := `
	CREATE TABLE IF NOT EXISTS analyses (
		file_id TEXT PRIMARY KEY,
		model TEXT NOT NULL,
		result_json TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create analyses table: %w", err)
	}
	return nil
}

// Get retrieves an analysis by file ID. Returns nil, nil if none is stored.
func (s *SQLiteStore) Get(fileID string) (*StoredAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var model, resultJSON string
	var createdAt time.Time

	err := s.db.QueryRow(
		"SELECT model, result_json, created_at FROM analyses WHERE file_id = ?",
		fileID,
	).Scan(&model, &resultJSON, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis: %w", err)
	}

	var result analysis.Result
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored result: %w", err)
	}

	return &StoredAnalysis{
		FileID:    fileID,
		Model:     model,
		Result:    result,
		CreatedAt: createdAt,
	}, nil
}

// Save stores or replaces an analysis.
func (s *SQLiteStore) Save(stored *StoredAnalysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	resultJSON, err := json.Marshal(stored.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	stored.CreatedAt = time.Now()

	_, err = s.db.Exec(`
		INSERT INTO analyses (file_id, model, result_json, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(file_id) DO UPDATE SET
			model = excluded.model,
			result_json = excluded.result_json,
			created_at = excluded.created_at
	`, stored.FileID, stored.Model, string(resultJSON), stored.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	return nil
}

// GetAll retrieves every stored analysis.
func (s *SQLiteStore) GetAll() ([]StoredAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT file_id, model, result_json, created_at FROM analyses ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	var analyses []StoredAnalysis
	for rows.Next() {
		var fileID, model, resultJSON string
		var createdAt time.Time

		if err := rows.Scan(&fileID, &model, &resultJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		var result analysis.Result
		if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result for %s: %w", fileID, err)
		}

		analyses = append(analyses, StoredAnalysis{
			FileID:    fileID,
			Model:     model,
			Result:    result,
			CreatedAt: createdAt,
		})
	}

	return analyses, rows.Err()
}

// Delete removes an analysis by file ID.
func (s *SQLiteStore) Delete(fileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM analyses WHERE file_id = ?", fileID)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
