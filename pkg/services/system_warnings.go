package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Warning category constants for categorizing system warnings.
const (
	WarningCategoryDMSHealth         = "dms_health"          // DMS became unreachable or rejected auth
	WarningCategoryLLMHealth         = "llm_health"          // model endpoint failing or misconfigured
	WarningCategoryOCRHealth         = "ocr_health"          // OCR provider failing
	WarningCategoryVectorStoreHealth = "vector_store_health" // qdrant unreachable; indexing degraded
)

// SystemWarning represents a non-fatal system issue surfaced to the
// operator: the pipeline keeps running (or degrades gracefully), but
// something needs attention.
type SystemWarning struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Component string    `json:"component,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SystemWarningsService manages in-memory system warnings.
// Thread-safe. Not persisted — warnings are transient and reset on restart.
type SystemWarningsService struct {
	mu       sync.RWMutex
	warnings map[string]*SystemWarning // warningID → warning
}

// NewSystemWarningsService creates a new SystemWarningsService.
func NewSystemWarningsService() *SystemWarningsService {
	return &SystemWarningsService{
		warnings: make(map[string]*SystemWarning),
	}
}

// AddWarning adds a warning and returns its ID.
// If a warning with the same category+component already exists, it is replaced.
func (s *SystemWarningsService) AddWarning(category, message, details, component string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, w := range s.warnings {
		if w.Category == category && w.Component == component {
			delete(s.warnings, id)
			break
		}
	}

	id := uuid.New().String()
	s.warnings[id] = &SystemWarning{
		ID:        id,
		Category:  category,
		Message:   message,
		Details:   details,
		Component: component,
		CreatedAt: time.Now(),
	}
	return id
}

// ResolveWarning removes a warning by category+component, returning
// whether one existed. Called when the unhealthy collaborator recovers.
func (s *SystemWarningsService) ResolveWarning(category, component string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, w := range s.warnings {
		if w.Category == category && w.Component == component {
			delete(s.warnings, id)
			return true
		}
	}
	return false
}

// GetWarnings returns all current warnings, newest first.
func (s *SystemWarningsService) GetWarnings() []*SystemWarning {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*SystemWarning, 0, len(s.warnings))
	for _, w := range s.warnings {
		copied := *w
		out = append(out, &copied)
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}
