package service

import (
	"log"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter estimates token counts locally for replies where the remote
// usage block is missing. Counts are estimates either way: Perplexity models
// do not share their tokenizer, so cl100k_base is used as a stand-in.
type TokenCounter struct {
	once     sync.Once
	encoding *tiktoken.Tiktoken
}

// NewTokenCounter creates a token counter. The encoding is loaded lazily on
// first use because tiktoken may fetch its BPE ranks.
func NewTokenCounter() *TokenCounter {
	return &TokenCounter{}
}

// Count returns the estimated token count for text. Falls back to a
// bytes/4 heuristic when the encoding cannot be initialized.
func (t *TokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	t.once.Do(func() {
		encoding, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			log.Printf("Warning: failed to load tiktoken encoding, using heuristic estimate: %v", err)
			return
		}
		t.encoding = encoding
	})

	if t.encoding == nil {
		// Rough average of ~4 bytes per token for English text
		return (len(text) + 3) / 4
	}

	return len(t.encoding.Encode(text, nil, nil))
}
