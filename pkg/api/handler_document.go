package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/corvid/pkg/events"
	"github.com/codeready-toolchain/corvid/pkg/pipeline"
)

func docIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// handleProcessDocument runs the whole pipeline for one document,
// streaming newline-delimited JSON events over the long-lived response.
// The final line is the terminal event; the
// batch summary is not repeated in the body, since the event stream
// carries everything the UI renders.
func (s *Server) handleProcessDocument(c *gin.Context) {
	docID, ok := docIDParam(c)
	if !ok {
		return
	}
	s.touchActivity()

	c.Writer.Header().Set("Content-Type", "application/x-ndjson")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.WriteHeader(http.StatusOK)

	sink := events.NewNDJSONSink(c.Writer)
	s.orchestrator.Run(c.Request.Context(), docID, sink)
}

// handleRunStep runs a single named stage ad hoc, with the same NDJSON
// streaming contract.
func (s *Server) handleRunStep(c *gin.Context) {
	docID, ok := docIDParam(c)
	if !ok {
		return
	}
	step := c.Param("step")
	if !pipeline.KnownStep(step) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown step " + step})
		return
	}
	s.touchActivity()

	c.Writer.Header().Set("Content-Type", "application/x-ndjson")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.WriteHeader(http.StatusOK)

	sink := events.NewNDJSONSink(c.Writer)
	s.orchestrator.RunStep(c.Request.Context(), docID, step, sink)
}

// handleProcessingLog replays a document's audit log for the UI.
func (s *Server) handleProcessingLog(c *gin.Context) {
	docID, ok := docIDParam(c)
	if !ok {
		return
	}
	entries, err := s.logs.ListByDoc(c.Request.Context(), docID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doc_id": docID, "entries": entries})
}
