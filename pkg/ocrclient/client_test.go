package ocrclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	c := New(server.URL, "test-token", 0, 2, false, WithHTTPClient(server.Client()))
	return c
}

func TestExtractSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "invoice.pdf", r.Header.Get("X-Filename"))
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{"text": "hello world", "pages": 2})
	})

	result, err := client.Extract(context.Background(), 42, "invoice.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "hello world", result.Text)
	assert.Equal(t, 2, result.Pages)
}

func TestExtractRetriesOnTransientFailure(t *testing.T) {
	var attempts atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		n := attempts.Add(1)
		if n < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{"text": "ok", "pages": 1})
	})

	result, err := client.Extract(context.Background(), 1, "doc.pdf", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Text)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestExtractFailsFastOnPermanentError(t *testing.T) {
	var attempts atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := client.Extract(context.Background(), 1, "doc.pdf", []byte("x"))
	require.Error(t, err)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestExtractMockMode(t *testing.T) {
	client := New("", "", 0, 0, true)
	result, err := client.Extract(context.Background(), 1, "doc.txt", []byte("page one\fpage two"))
	require.NoError(t, err)
	assert.Equal(t, "page one\fpage two", result.Text)
	assert.Equal(t, 2, result.Pages)
}
