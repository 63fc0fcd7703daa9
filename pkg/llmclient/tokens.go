package llmclient

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter estimates prompt-token usage so stage engines can truncate
// document content before it blows past a model's context window. Built
// once and shared; tiktoken-go's encoding tables are expensive to load
// repeatedly.
type TokenCounter struct {
	mu       sync.Mutex
	encoding *tiktoken.Tiktoken
}

// NewTokenCounter loads the cl100k_base encoding, the encoding used by the
// analyst/reviewer model families this adapter targets.
func NewTokenCounter() (*TokenCounter, error) {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, err
	}
	return &TokenCounter{encoding: enc}, nil
}

// Count returns the estimated token count of text.
func (tc *TokenCounter) Count(text string) int {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return len(tc.encoding.Encode(text, nil, nil))
}

// TruncateToBudget trims text so its estimated token count does not
// exceed maxTokens, cutting on a line boundary where possible so a
// document excerpt doesn't end mid-sentence. Used before rendering the
// {document_content} prompt variable.
func (tc *TokenCounter) TruncateToBudget(text string, maxTokens int) string {
	if maxTokens <= 0 || tc.Count(text) <= maxTokens {
		return text
	}

	tc.mu.Lock()
	tokens := tc.encoding.Encode(text, nil, nil)
	tc.mu.Unlock()

	if len(tokens) <= maxTokens {
		return text
	}
	tc.mu.Lock()
	truncated := tc.encoding.Decode(tokens[:maxTokens])
	tc.mu.Unlock()

	if idx := strings.LastIndexByte(truncated, '\n'); idx > len(truncated)/2 {
		return truncated[:idx]
	}
	return truncated
}
