package model

import "fmt"

// CostEstimate is the estimated USD cost of one completed call.
// Derived, never mutated after creation; accumulation happens in the
// session store, not here.
type CostEstimate struct {
	Model        string  `json:"model"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	AmountUSD    float64 `json:"amount_usd"`
	Estimated    bool    `json:"estimated,omitempty"` // token counts were estimated locally
}

// FormattedUSD renders the amount for display
func (c CostEstimate) FormattedUSD() string {
	return fmt.Sprintf("$%.6f", c.AmountUSD)
}

// ModelRates describes one catalog entry with per-1K token USD rates
type ModelRates struct {
	Model       string  `json:"model"`
	InputPer1K  float64 `json:"input_per_1k"`
	OutputPer1K float64 `json:"output_per_1k"`
	Legacy      bool    `json:"legacy,omitempty"`
}
