package model

import "time"

// SessionCall is one completed remote call recorded in the session store
type SessionCall struct {
	ID           int64     `json:"id" db:"id"`
	SessionID    string    `json:"session_id" db:"session_id"`
	Query        string    `json:"query" db:"query"`
	Model        string    `json:"model" db:"model"`
	Kind         string    `json:"kind" db:"kind"`
	InputTokens  int       `json:"input_tokens" db:"input_tokens"`
	OutputTokens int       `json:"output_tokens" db:"output_tokens"`
	CostUSD      float64   `json:"cost_usd" db:"cost_usd"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// SessionSummary aggregates a session's calls and accumulated cost
type SessionSummary struct {
	SessionID    string        `json:"session_id"`
	Calls        int           `json:"calls"`
	TotalCostUSD float64       `json:"total_cost_usd"`
	History      []SessionCall `json:"history"`
}
