package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/corvid/pkg/models"
)

// handleListReviews returns open reviews, optionally filtered by kind
// and/or doc_id query parameters.
func (s *Server) handleListReviews(c *gin.Context) {
	filter := ReviewListFilter{Kind: models.ReviewKind(c.Query("kind"))}
	if raw := c.Query("doc_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "doc_id must be an integer"})
			return
		}
		filter.DocID = id
	}
	reviews, err := s.reviews.List(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "count": len(reviews)})
}

func (s *Server) handleReviewCounts(c *gin.Context) {
	counts, err := s.reviews.CountsByKind(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"counts": counts})
}

func (s *Server) handleSimilarGroups(c *gin.Context) {
	groups, err := s.reviews.SimilarGroups(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

func (s *Server) handleGetReview(c *gin.Context) {
	review, err := s.reviews.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// handleApproveReview applies a pending review, optionally with a
// user-supplied replacement value, and resumes the document's pipeline.
func (s *Server) handleApproveReview(c *gin.Context) {
	s.touchActivity()

	var req models.ApproveReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.resolver.Approve(c.Request.Context(), c.Param("id"), req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "approved"})
}

func (s *Server) handleRejectReview(c *gin.Context) {
	s.touchActivity()

	var req models.RejectReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.resolver.Reject(c.Request.Context(), c.Param("id"), req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "rejected"})
}

// handleBulkResolve approves or rejects a batch of reviews uniformly,
// reporting per-item failures without aborting the batch.
func (s *Server) handleBulkResolve(c *gin.Context) {
	s.touchActivity()

	var req models.BulkResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids must not be empty"})
		return
	}

	failures := s.resolver.Bulk(c.Request.Context(), req)
	failed := make(map[string]string, len(failures))
	for id, err := range failures {
		failed[id] = err.Error()
	}
	c.JSON(http.StatusOK, gin.H{
		"resolved": len(req.IDs) - len(failures),
		"failed":   failed,
	})
}

// blockRequest adds a normalized suggestion to the blocklist.
type blockRequest struct {
	Kind       string `json:"kind" binding:"required"`
	Suggestion string `json:"suggestion" binding:"required"`
}

func (s *Server) handleBlockSuggestion(c *gin.Context) {
	s.touchActivity()

	var req blockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind and suggestion are required"})
		return
	}
	if err := s.reviews.Block(c.Request.Context(), models.ReviewKind(req.Kind), req.Suggestion); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "blocked"})
}
