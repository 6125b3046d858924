package repository

import (
	"context"
	"math"
	"testing"

	"github.com/nshtkum/perplexchecker/internal/model"
)

func newTestRepository(t *testing.T) *SessionRepository {
	t.Helper()
	repo, err := NewSessionRepository()
	if err != nil {
		t.Fatalf("NewSessionRepository() error: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSessionRepository_RecordAndSummary(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	calls := []model.SessionCall{
		{SessionID: "abc", Query: "first", Model: "sonar", Kind: "property_facts", InputTokens: 100, OutputTokens: 50, CostUSD: 0.00015},
		{SessionID: "abc", Query: "second", Model: "sonar-pro", Kind: "image_search", InputTokens: 200, OutputTokens: 80, CostUSD: 0.0018},
		{SessionID: "other", Query: "elsewhere", Model: "sonar", Kind: "property_facts", InputTokens: 10, OutputTokens: 5, CostUSD: 0.000015},
	}
	for i := range calls {
		if err := repo.RecordCall(ctx, &calls[i]); err != nil {
			t.Fatalf("RecordCall(%d) error: %v", i, err)
		}
	}

	summary, err := repo.Summary(ctx, "abc")
	if err != nil {
		t.Fatalf("Summary() error: %v", err)
	}

	if summary.Calls != 2 {
		t.Errorf("Calls = %d, want 2", summary.Calls)
	}
	if math.Abs(summary.TotalCostUSD-0.00195) > 1e-9 {
		t.Errorf("TotalCostUSD = %v, want 0.00195", summary.TotalCostUSD)
	}

	// History preserves insertion order
	if summary.History[0].Query != "first" || summary.History[1].Query != "second" {
		t.Errorf("history order wrong: %+v", summary.History)
	}
	if summary.History[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestSessionRepository_EmptySession(t *testing.T) {
	repo := newTestRepository(t)

	summary, err := repo.Summary(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Summary() error: %v", err)
	}

	if summary.Calls != 0 || summary.TotalCostUSD != 0 {
		t.Errorf("empty session summary = %+v, want zero values", summary)
	}
	if summary.History == nil || len(summary.History) != 0 {
		t.Errorf("History = %v, want empty slice", summary.History)
	}
}
