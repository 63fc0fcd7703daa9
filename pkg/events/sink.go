package events

import (
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Sink receives pipeline events as they are produced. The orchestrator
// is the sole producer; Sink implementations decide how to surface
// them (NDJSON over HTTP, in-memory recording for batch mode and tests).
type Sink interface {
	Emit(Event)
}

// NDJSONSink writes one JSON object per line to w, flushing after every
// event so a long-lived HTTP handler can stream progress to the UI as it
// happens. Safe for concurrent use, though a single pipeline run only ever
// has one writer goroutine.
type NDJSONSink struct {
	mu      sync.Mutex
	w       io.Writer
	flusher interface{ Flush() }
	logger  *slog.Logger
}

// NewNDJSONSink wraps w. If w also implements an http.Flusher-shaped
// Flush() method, each event is flushed immediately.
func NewNDJSONSink(w io.Writer) *NDJSONSink {
	s := &NDJSONSink{w: w, logger: slog.Default().With("component", "events")}
	if f, ok := w.(interface{ Flush() }); ok {
		s.flusher = f
	}
	return s
}

// Emit writes one NDJSON line. Encoding/write failures are logged, not
// returned — the event stream is best-effort UI plumbing, never allowed to
// fail the pipeline run itself.
func (s *NDJSONSink) Emit(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	enc := json.NewEncoder(s.w)
	if err := enc.Encode(e); err != nil {
		s.logger.Warn("failed to write pipeline event", "type", e.Type, "doc_id", e.DocID, "error", err)
		return
	}
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

// RecordingSink accumulates events in memory, in order. Used by batch mode
// (to build the {steps, success, ...} summary) and by tests asserting on
// the event grammar.
type RecordingSink struct {
	mu     sync.Mutex
	events []Event
}

// NewRecordingSink returns an empty RecordingSink.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

// Emit appends e, stamping Timestamp if unset.
func (s *RecordingSink) Emit(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

// Events returns a copy of every event recorded so far, in order.
func (s *RecordingSink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// MultiSink fans a single Emit out to every sink it wraps, e.g. an
// NDJSONSink for the live HTTP response and a RecordingSink for building
// the batch-mode summary from the same run.
type MultiSink []Sink

// Emit fans out to every wrapped sink.
func (m MultiSink) Emit(e Event) {
	for _, s := range m {
		s.Emit(e)
	}
}
