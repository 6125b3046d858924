package model

// TaskKind selects which prompt template a search uses
type TaskKind string

const (
	TaskPropertyFacts TaskKind = "property_facts"
	TaskImageSearch   TaskKind = "image_search"
)

// SearchRequest represents one user-initiated lookup.
// Immutable once constructed; the API key is forwarded, never stored.
type SearchRequest struct {
	Query  string `json:"query" binding:"required"`
	Model  string `json:"model,omitempty"`
	APIKey string `json:"api_key,omitempty"`
}

// ImageSearchRequest is a SearchRequest plus a result cap
type ImageSearchRequest struct {
	SearchRequest
	MaxResults int `json:"max_results,omitempty"`
}

// PropertySearchResponse is returned by POST /api/v1/property/search.
// When extraction fails recoverably, Record is nil and ErrorKind is set so
// the UI can show RawReply for diagnosis.
type PropertySearchResponse struct {
	Record    *PropertyRecord `json:"record,omitempty"`
	RawReply  string          `json:"raw_reply"`
	Cost      *CostEstimate   `json:"cost,omitempty"`
	Warnings  []string        `json:"warnings,omitempty"`
	ErrorKind string          `json:"error_kind,omitempty"`
	Took      int64           `json:"took_ms"`
}

// ImageSearchResponse is returned by POST /api/v1/images/search
type ImageSearchResponse struct {
	URLs     []string      `json:"urls"`
	RawReply string        `json:"raw_reply"`
	Cost     *CostEstimate `json:"cost,omitempty"`
	Took     int64         `json:"took_ms"`
}

// CostEstimateRequest is the body for POST /api/v1/cost/estimate
type CostEstimateRequest struct {
	Model        string `json:"model" binding:"required"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}
