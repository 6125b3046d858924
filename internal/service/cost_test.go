package service

import (
	"math"
	"sort"
	"testing"
)

func TestEstimateCost(t *testing.T) {
	tests := []struct {
		name         string
		model        string
		inputTokens  int
		outputTokens int
		want         float64
	}{
		{
			// 1000 tokens each way costs exactly inputRate + outputRate
			name:         "Known model at one thousand tokens",
			model:        "sonar",
			inputTokens:  1000,
			outputTokens: 1000,
			want:         modelRates["sonar"].InputPer1K + modelRates["sonar"].OutputPer1K,
		},
		{
			name:         "Unknown model falls back to default rates",
			model:        "unknown-model",
			inputTokens:  100,
			outputTokens: 100,
			want:         100*defaultRates.InputPer1K/1000 + 100*defaultRates.OutputPer1K/1000,
		},
		{
			name:         "Asymmetric rates",
			model:        "sonar-pro",
			inputTokens:  2000,
			outputTokens: 500,
			want:         2000*0.003/1000 + 500*0.015/1000,
		},
		{
			name:  "Zero tokens cost nothing",
			model: "sonar",
		},
		{
			name:         "Legacy model still priced",
			model:        "mistral-7b-instruct",
			inputTokens:  1000,
			outputTokens: 1000,
			want:         0.0004,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateCost(tt.model, tt.inputTokens, tt.outputTokens)

			if math.Abs(got.AmountUSD-tt.want) > 1e-9 {
				t.Errorf("EstimateCost() = %v, want %v", got.AmountUSD, tt.want)
			}
			if got.AmountUSD < 0 {
				t.Errorf("EstimateCost() amount is negative: %v", got.AmountUSD)
			}
			if got.Model != tt.model {
				t.Errorf("EstimateCost() model = %q, want %q", got.Model, tt.model)
			}
		})
	}
}

func TestEstimateCost_NegativeTokensClamped(t *testing.T) {
	got := EstimateCost("sonar", -50, -50)
	if got.AmountUSD != 0 {
		t.Errorf("EstimateCost() with negative tokens = %v, want 0", got.AmountUSD)
	}
	if got.InputTokens != 0 || got.OutputTokens != 0 {
		t.Errorf("token counts = (%d, %d), want (0, 0)", got.InputTokens, got.OutputTokens)
	}
}

func TestEstimateCost_Deterministic(t *testing.T) {
	first := EstimateCost("sonar-reasoning", 1234, 5678)
	second := EstimateCost("sonar-reasoning", 1234, 5678)
	if first != second {
		t.Errorf("EstimateCost() is not deterministic: %+v != %+v", first, second)
	}
}

func TestFormattedUSD(t *testing.T) {
	estimate := EstimateCost("sonar", 1000, 1000)
	if got := estimate.FormattedUSD(); got != "$0.002000" {
		t.Errorf("FormattedUSD() = %q, want %q", got, "$0.002000")
	}
}

func TestModelCatalog(t *testing.T) {
	catalog := ModelCatalog()

	if len(catalog) != len(modelRates) {
		t.Fatalf("ModelCatalog() has %d entries, want %d", len(catalog), len(modelRates))
	}

	if !sort.SliceIsSorted(catalog, func(i, j int) bool {
		return catalog[i].Model < catalog[j].Model
	}) {
		t.Error("ModelCatalog() is not sorted by identifier")
	}

	if !KnownModel("sonar") {
		t.Error(`KnownModel("sonar") = false, want true`)
	}
	if KnownModel("unknown-model") {
		t.Error(`KnownModel("unknown-model") = true, want false`)
	}
}
