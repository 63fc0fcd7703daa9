package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/corvid/pkg/version"
)

// handleHealth reports liveness plus database reachability and any open
// system warnings.
func (s *Server) handleHealth(c *gin.Context) {
	healthy := true
	dbError := ""
	if s.healthCheck != nil {
		if err := s.healthCheck(c.Request.Context()); err != nil {
			healthy = false
			dbError = err.Error()
		}
	}

	warningCount := 0
	if s.warnings != nil {
		warningCount = len(s.warnings.GetWarnings())
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"healthy":  healthy,
		"db_error": dbError,
		"warnings": warningCount,
		"version":  version.Full(),
	})
}

func (s *Server) handleWarnings(c *gin.Context) {
	if s.warnings == nil {
		c.JSON(http.StatusOK, gin.H{"warnings": []any{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"warnings": s.warnings.GetWarnings()})
}

// handleJobStates reports scheduler and maintenance job bookkeeping.
func (s *Server) handleJobStates(c *gin.Context) {
	states, err := s.jobs.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": states})
}

// handleCancelCurrent cancels the document the scheduler is currently
// processing, if any. The run drains its active stage and the document is
// re-admitted later.
func (s *Server) handleCancelCurrent(c *gin.Context) {
	if s.sched == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "automatic processing is not running"})
		return
	}
	s.sched.CancelCurrent()
	c.JSON(http.StatusAccepted, gin.H{"status": "cancellation requested"})
}

func (s *Server) handleGetSettings(c *gin.Context) {
	all, err := s.settings.All(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": all})
}

type putSettingRequest struct {
	Value string `json:"value"`
}

func (s *Server) handlePutSetting(c *gin.Context) {
	s.touchActivity()

	var req putSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.settings.Set(c.Request.Context(), c.Param("key"), req.Value); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}
