// Package history persists finished analyses in SQLite so they can be listed,
// re-rendered and pruned later.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ericksa/contractlens/internal/analysis"
	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned by Get for an unknown analysis id.
var ErrNotFound = errors.New("analysis not found")

const schema = `CREATE TABLE IF NOT EXISTS analyses (
	id TEXT PRIMARY KEY,
	file_name TEXT NOT NULL,
	contract_type TEXT NOT NULL,
	language TEXT NOT NULL,
	overall_risk_score INTEGER NOT NULL,
	overall_risk_level TEXT NOT NULL,
	clause_count INTEGER NOT NULL,
	uploaded_at INTEGER NOT NULL,
	payload TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS analyses_uploaded_at ON analyses (uploaded_at);`

// Summary is one row of the history listing.
type Summary struct {
	ID               string                `json:"id"`
	FileName         string                `json:"file_name"`
	ContractType     analysis.ContractType `json:"contract_type"`
	Language         analysis.Language     `json:"language"`
	OverallRiskScore int                   `json:"overall_risk_score"`
	OverallRiskLevel analysis.RiskLevel    `json:"overall_risk_level"`
	ClauseCount      int                   `json:"clause_count"`
	UploadedAt       time.Time             `json:"uploaded_at"`
}

type Store struct {
	db *sql.DB
}

// Open creates or opens the history database at path. ":memory:" is
// accepted for tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Save stores a, replacing any earlier analysis with the same id.
func (s *Store) Save(ctx context.Context, a analysis.ContractAnalysis) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO analyses
			(id, file_name, contract_type, language, overall_risk_score, overall_risk_level, clause_count, uploaded_at, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.FileName, string(a.ContractType), string(a.Language), a.OverallRiskScore,
		string(a.OverallRiskLevel), len(a.Clauses), a.UploadedAt.UnixNano(), string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis %s: %w", a.ID, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (analysis.ContractAnalysis, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, "SELECT payload FROM analyses WHERE id = ?", id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return analysis.ContractAnalysis{}, ErrNotFound
	}
	if err != nil {
		return analysis.ContractAnalysis{}, fmt.Errorf("failed to load analysis %s: %w", id, err)
	}
	var a analysis.ContractAnalysis
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		return analysis.ContractAnalysis{}, fmt.Errorf("failed to decode analysis %s: %w", id, err)
	}
	return a, nil
}

// List returns up to limit summaries, newest first. A limit of zero or less
// returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, file_name, contract_type, language, overall_risk_score, overall_risk_level, clause_count, uploaded_at
		FROM analyses ORDER BY uploaded_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		var (
			sum      Summary
			uploaded int64
		)
		if err := rows.Scan(&sum.ID, &sum.FileName, &sum.ContractType, &sum.Language,
			&sum.OverallRiskScore, &sum.OverallRiskLevel, &sum.ClauseCount, &uploaded); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		sum.UploadedAt = time.Unix(0, uploaded).UTC()
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Prune deletes analyses uploaded before the cutoff and reports how many
// were removed.
func (s *Store) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM analyses WHERE uploaded_at < ?", before.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to prune analyses: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) Close() error {
	return s.db.Close()
}
