package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nshtkum/perplexchecker/internal/model"
)

const sessionSchema = `
CREATE TABLE IF NOT EXISTS session_calls (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id    TEXT NOT NULL,
	query         TEXT NOT NULL,
	model         TEXT NOT NULL,
	kind          TEXT NOT NULL,
	input_tokens  INTEGER NOT NULL,
	output_tokens INTEGER NOT NULL,
	cost_usd      REAL NOT NULL,
	created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_session_calls_session ON session_calls(session_id);
`

// SessionRepository records completed calls and their cost per session.
// Backed by an in-memory SQLite database: session state is explicit and
// queryable while the process runs, and nothing survives a restart.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository opens the in-memory store and creates the schema
func NewSessionRepository() (*SessionRepository, error) {
	// Single shared in-memory DB; cache=shared keeps every connection in
	// the pool on the same database
	db, err := sqlx.Connect("sqlite3", "file:sessions?mode=memory&cache=shared")
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	// SQLite serializes writers; one connection avoids lock contention
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sessionSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create session schema: %w", err)
	}

	return &SessionRepository{db: db}, nil
}

// Close closes the database connection
func (r *SessionRepository) Close() error {
	return r.db.Close()
}

// RecordCall appends one completed call to the session history
func (r *SessionRepository) RecordCall(ctx context.Context, call *model.SessionCall) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO session_calls (session_id, query, model, kind, input_tokens, output_tokens, cost_usd)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		call.SessionID, call.Query, call.Model, call.Kind,
		call.InputTokens, call.OutputTokens, call.CostUSD,
	)
	if err != nil {
		return fmt.Errorf("failed to record call: %w", err)
	}
	return nil
}

// Summary returns a session's history and accumulated totals. A session
// with no calls yields an empty history and a zero total.
func (r *SessionRepository) Summary(ctx context.Context, sessionID string) (*model.SessionSummary, error) {
	calls := []model.SessionCall{}
	err := r.db.SelectContext(ctx, &calls,
		`SELECT id, session_id, query, model, kind, input_tokens, output_tokens, cost_usd, created_at
		 FROM session_calls WHERE session_id = ? ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load session history: %w", err)
	}

	summary := &model.SessionSummary{
		SessionID: sessionID,
		Calls:     len(calls),
		History:   calls,
	}
	for _, call := range calls {
		summary.TotalCostUSD += call.CostUSD
	}

	return summary, nil
}
