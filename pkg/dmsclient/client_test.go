package dmsclient

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
	return NewClient(server.URL, "test-token", 2, WithHTTPClient(server.Client()))
}

func TestGetDocument(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(documentDTO{ID: 42, Title: "Invoice", TagIDs: []int{7}})
	})
	client.tags.put(7, "llm-ocr-done")

	doc, err := client.GetDocument(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 42, doc.ID)
	assert.Equal(t, []string{"llm-ocr-done"}, doc.TagNames)
}

func TestGetDocumentNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetDocument(context.Background(), 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestDoJSONRetriesOnTransientFailure(t *testing.T) {
	var attempts atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		n := attempts.Add(1)
		if n < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(documentDTO{ID: 1})
	})

	doc, err := client.GetDocument(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.ID)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestDoJSONFailsFastOnAuthError(t *testing.T) {
	var attempts atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.GetDocument(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuth)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestTransitionTagAddThenRemove(t *testing.T) {
	var addCalled, removeCalled bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == "GET":
			_ = json.NewEncoder(w).Encode(documentDTO{ID: 1, TagIDs: []int{10}})
		case r.URL.Path == "/api/documents/1/tags/add/":
			addCalled = true
			w.WriteHeader(http.StatusOK)
		case r.URL.Path == "/api/documents/1/tags/remove/":
			removeCalled = true
			w.WriteHeader(http.StatusOK)
		}
	})
	client.tags.put(10, "llm-pending")
	client.tags.put(11, "llm-ocr-done")

	err := client.TransitionTag(context.Background(), 1, "llm-pending", "llm-ocr-done")
	require.NoError(t, err)
	assert.True(t, addCalled)
	assert.True(t, removeCalled)
}

func TestTransitionTagIdempotentWhenAlreadyTransitioned(t *testing.T) {
	var addCalled, removeCalled bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == "GET":
			// Crash occurred after add but before remove: document already
			// carries both tags.
			_ = json.NewEncoder(w).Encode(documentDTO{ID: 1, TagIDs: []int{10, 11}})
		case r.URL.Path == "/api/documents/1/tags/add/":
			addCalled = true
		case r.URL.Path == "/api/documents/1/tags/remove/":
			removeCalled = true
			w.WriteHeader(http.StatusOK)
		}
	})
	client.tags.put(10, "llm-pending")
	client.tags.put(11, "llm-ocr-done")

	err := client.TransitionTag(context.Background(), 1, "llm-pending", "llm-ocr-done")
	require.NoError(t, err)
	assert.False(t, addCalled, "add should be skipped since to-tag already present")
	assert.True(t, removeCalled)
}
