package service

import (
	"math"
	"sort"

	"github.com/nshtkum/perplexchecker/internal/model"
)

// modelRates maps known model identifiers to USD rates per 1K tokens.
// Unknown identifiers fall back to defaultRates instead of failing, so a
// newly released model still produces a usable ballpark figure.
var modelRates = map[string]model.ModelRates{
	"sonar":               {Model: "sonar", InputPer1K: 0.001, OutputPer1K: 0.001},
	"sonar-pro":           {Model: "sonar-pro", InputPer1K: 0.003, OutputPer1K: 0.015},
	"sonar-reasoning":     {Model: "sonar-reasoning", InputPer1K: 0.001, OutputPer1K: 0.005},
	"sonar-reasoning-pro": {Model: "sonar-reasoning-pro", InputPer1K: 0.002, OutputPer1K: 0.008},
	"sonar-deep-research": {Model: "sonar-deep-research", InputPer1K: 0.002, OutputPer1K: 0.008},

	// Retired identifiers kept so old sessions still price correctly
	"mistral-7b-instruct":               {Model: "mistral-7b-instruct", InputPer1K: 0.0002, OutputPer1K: 0.0002, Legacy: true},
	"llama-3.1-sonar-small-128k-online": {Model: "llama-3.1-sonar-small-128k-online", InputPer1K: 0.0002, OutputPer1K: 0.0002, Legacy: true},
	"llama-3.1-sonar-large-128k-online": {Model: "llama-3.1-sonar-large-128k-online", InputPer1K: 0.001, OutputPer1K: 0.001, Legacy: true},
}

// defaultRates is the documented flat-rate fallback for unknown models
var defaultRates = model.ModelRates{InputPer1K: 0.001, OutputPer1K: 0.001}

// EstimateCost computes the USD cost of one call from the rate table.
// Pure and deterministic; negative token counts are treated as zero so the
// amount is always >= 0.
func EstimateCost(modelID string, inputTokens, outputTokens int) model.CostEstimate {
	if inputTokens < 0 {
		inputTokens = 0
	}
	if outputTokens < 0 {
		outputTokens = 0
	}

	rates, ok := modelRates[modelID]
	if !ok {
		rates = defaultRates
	}

	amount := float64(inputTokens)*rates.InputPer1K/1000 + float64(outputTokens)*rates.OutputPer1K/1000

	return model.CostEstimate{
		Model:        modelID,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		AmountUSD:    roundUSD(amount),
	}
}

// KnownModel reports whether the identifier has a catalog entry
func KnownModel(modelID string) bool {
	_, ok := modelRates[modelID]
	return ok
}

// ModelCatalog returns all catalog entries sorted by identifier
func ModelCatalog() []model.ModelRates {
	catalog := make([]model.ModelRates, 0, len(modelRates))
	for _, rates := range modelRates {
		catalog = append(catalog, rates)
	}
	sort.Slice(catalog, func(i, j int) bool {
		return catalog[i].Model < catalog[j].Model
	})
	return catalog
}

// roundUSD keeps six decimal places, which covers the display requirement
// of at least four
func roundUSD(amount float64) float64 {
	return math.Round(amount*1e6) / 1e6
}
