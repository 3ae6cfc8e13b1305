package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Actions recorded by the gateway, the CLI and the MCP handler.
const (
	ActionAnalysisCompleted = "ANALYSIS_COMPLETED"
	ActionTranslation       = "TRANSLATION"
	ActionReportExported    = "REPORT_EXPORTED"
	ActionToolCall          = "TOOL_CALL"
)

type Auditor struct {
	db  *sql.DB
	now func() time.Time
}

type Entry struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Action     string    `json:"action"`
	ContractID string    `json:"contract_id,omitempty"`
	Details    string    `json:"details"`
}

func NewAuditor(path string) (*Auditor, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit db: %w", err)
	}
	db.SetMaxOpenConns(1)
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS audit_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		action TEXT NOT NULL,
		contract_id TEXT,
		details TEXT,
		timestamp INTEGER NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create audit table: %w", err)
	}
	return &Auditor{db: db, now: time.Now}, nil
}

// Log records one action. contractID may be empty.
func (a *Auditor) Log(ctx context.Context, action, contractID, details string) error {
	_, err := a.db.ExecContext(ctx,
		"INSERT INTO audit_log (action, contract_id, details, timestamp) VALUES (?, ?, ?, ?)",
		action, contractID, details, a.now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

// GetLogs returns the most recent entries first.
func (a *Auditor) GetLogs(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := a.db.QueryContext(ctx,
		"SELECT id, action, contract_id, details, timestamp FROM audit_log ORDER BY timestamp DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read audit log: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e        Entry
			ts       int64
			contract sql.NullString
			details  sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Action, &contract, &details, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan audit row: %w", err)
		}
		e.ContractID = contract.String
		e.Details = details.String
		e.Timestamp = time.Unix(0, ts).UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (a *Auditor) Close() error {
	return a.db.Close()
}
