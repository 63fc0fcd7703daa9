// Package ocrclient implements the OCR provider adapter: uploading a
// document's binary content and receiving back extracted text and a page
// count.
package ocrclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/codeready-toolchain/corvid/internal/pipelineerrors"
)

// Client is the sole component that talks to the external OCR provider.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	maxRetries int
	mock       bool
	logger     *slog.Logger
}

// Option configures a Client at construction.
type Option func(*Client)

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New constructs an OCR adapter. When mock is true (config "ocr.mock"),
// Extract returns synthetic text without making a network call, for
// local development and tests.
func New(baseURL, token string, timeout time.Duration, maxRetries int, mock bool, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		token:      token,
		maxRetries: maxRetries,
		mock:       mock,
		logger:     slog.Default().With("component", "ocrclient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Result is the extracted text and page count from one OCR call.
type Result struct {
	Text  string
	Pages int
}

// Extract uploads content (the document's binary, as read from the DMS)
// and returns the OCR provider's extracted text and page count.
func (c *Client) Extract(ctx context.Context, docID int, filename string, content []byte) (*Result, error) {
	if c.mock {
		return c.mockExtract(docID, content), nil
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff(attempt)):
			}
		}

		result, err := c.doExtract(ctx, filename, content)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, pipelineerrors.ErrTransientExternal) {
			return nil, err
		}
		lastErr = err
		c.logger.Warn("ocr request failed, retrying", "doc_id", docID, "attempt", attempt, "error", err)
	}
	return nil, lastErr
}

func (c *Client) doExtract(ctx context.Context, filename string, content []byte) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/extract", bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("ocrclient: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("X-Filename", filename)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pipelineerrors.ErrTransientExternal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ocrclient: read response: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var out struct {
			Text  string `json:"text"`
			Pages int    `json:"pages"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, fmt.Errorf("ocrclient: decode response: %w", err)
		}
		return &Result{Text: out.Text, Pages: out.Pages}, nil
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: HTTP %d", pipelineerrors.ErrTransientExternal, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: HTTP %d: %s", pipelineerrors.ErrPermanentExternal, resp.StatusCode, string(body))
	}
}

// mockExtract synthesizes OCR output for local development: the content
// is assumed to already be text (a common fixture shape in tests), and
// page count is estimated from form-feed characters or a default of 1.
func (c *Client) mockExtract(docID int, content []byte) *Result {
	text := string(content)
	pages := 1
	for _, b := range content {
		if b == '\f' {
			pages++
		}
	}
	c.logger.Debug("ocr mock extract", "doc_id", docID, "bytes", len(content), "pages", pages)
	return &Result{Text: text, Pages: pages}
}

func backoff(attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt-1)) * 200 * time.Millisecond
	if base > 30*time.Second {
		base = 30 * time.Second
	}
	jitter := time.Duration(rand.Int64N(int64(base) + 1))
	return base/2 + jitter/2
}
