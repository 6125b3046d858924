package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/nshtkum/perplexchecker/internal/model"
	"github.com/nshtkum/perplexchecker/internal/repository"
	"github.com/nshtkum/perplexchecker/internal/utils"
)

// ChatClient is the interface for the remote chat-completion API
type ChatClient interface {
	ChatCompletion(ctx context.Context, apiKey string, req ChatCompletionRequest) (*ChatCompletionResponse, error)
}

// Ensure PerplexityClient implements ChatClient
var _ ChatClient = (*PerplexityClient)(nil)

// SearchService runs one lookup end to end: build the prompt, call the
// remote API, interpret the reply, estimate the cost, record the call.
// The running cost total lives in the session store, never in this struct.
type SearchService struct {
	client   ChatClient
	tokens   *TokenCounter
	sessions *repository.SessionRepository
}

// NewSearchService creates a new search service
func NewSearchService(client ChatClient, tokens *TokenCounter, sessions *repository.SessionRepository) *SearchService {
	return &SearchService{
		client:   client,
		tokens:   tokens,
		sessions: sessions,
	}
}

// SearchProperty performs a property-facts lookup.
// Extraction failures are recoverable: the response carries the raw reply
// and an error kind instead of a record, and the call still counts toward
// the session total because the remote call did happen.
func (s *SearchService) SearchProperty(ctx context.Context, sessionID string, req *model.SearchRequest) (*model.PropertySearchResponse, error) {
	startTime := time.Now()

	prompt, err := BuildPrompt(req.Query, model.TaskPropertyFacts)
	if err != nil {
		return nil, err
	}

	reply, cost, err := s.complete(ctx, sessionID, req, model.TaskPropertyFacts, prompt)
	if err != nil {
		return nil, err
	}

	response := &model.PropertySearchResponse{
		RawReply: reply,
		Cost:     cost,
		Took:     time.Since(startTime).Milliseconds(),
	}

	record, warnings, err := utils.ExtractPropertyRecord(reply)
	switch {
	case err == nil:
		response.Record = record
		response.Warnings = warnings
	case errors.Is(err, utils.ErrNoJSONFound):
		response.ErrorKind = string(KindNoJSONFound)
	case errors.Is(err, utils.ErrMalformedJSON):
		response.ErrorKind = string(KindMalformedJSON)
	default:
		return nil, err
	}

	return response, nil
}

// SearchImages performs an image-URL lookup.
// An empty URL list is a normal result.
func (s *SearchService) SearchImages(ctx context.Context, sessionID string, req *model.ImageSearchRequest) (*model.ImageSearchResponse, error) {
	startTime := time.Now()

	prompt, err := BuildPrompt(req.Query, model.TaskImageSearch)
	if err != nil {
		return nil, err
	}

	reply, cost, err := s.complete(ctx, sessionID, &req.SearchRequest, model.TaskImageSearch, prompt)
	if err != nil {
		return nil, err
	}

	return &model.ImageSearchResponse{
		URLs:     utils.ExtractImageURLs(reply, req.MaxResults),
		RawReply: reply,
		Cost:     cost,
		Took:     time.Since(startTime).Milliseconds(),
	}, nil
}

// Session returns the caller's call history and accumulated cost
func (s *SearchService) Session(ctx context.Context, sessionID string) (*model.SessionSummary, error) {
	return s.sessions.Summary(ctx, sessionID)
}

// complete issues the remote call, prices it and records it in the session
func (s *SearchService) complete(ctx context.Context, sessionID string, req *model.SearchRequest, kind model.TaskKind, prompt string) (string, *model.CostEstimate, error) {
	resp, err := s.client.ChatCompletion(ctx, req.APIKey, ChatCompletionRequest{
		Model:    req.Model,
		Messages: []ChatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", nil, err
	}

	reply := resp.Choices[0].Message.Content

	// The response echoes the resolved model; fall back to the requested one
	modelID := resp.Model
	if modelID == "" {
		modelID = req.Model
	}

	inputTokens := resp.Usage.PromptTokens
	outputTokens := resp.Usage.CompletionTokens
	estimated := false
	if inputTokens == 0 && outputTokens == 0 {
		// Some gateways drop the usage block; estimate locally
		inputTokens = s.tokens.Count(prompt)
		outputTokens = s.tokens.Count(reply)
		estimated = true
	}

	cost := EstimateCost(modelID, inputTokens, outputTokens)
	cost.Estimated = estimated

	if err := s.sessions.RecordCall(ctx, &model.SessionCall{
		SessionID:    sessionID,
		Query:        req.Query,
		Model:        cost.Model,
		Kind:         string(kind),
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		CostUSD:      cost.AmountUSD,
	}); err != nil {
		// The lookup already succeeded; losing one history row is not fatal
		log.Printf("Warning: failed to record session call: %v", err)
	}

	return reply, &cost, nil
}
