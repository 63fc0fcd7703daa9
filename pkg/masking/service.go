// Package masking redacts secrets and PII from document content before it
// is sent to an LLM or written to a structured log line.
package masking

import "log/slog"

// Config selects which built-in pattern group a Service applies. It
// mirrors config.MaskingDefaults ("defaults.document_masking" in
// corvid.yaml) without importing pkg/config, so this package stays at the
// bottom of the dependency graph.
type Config struct {
	Enabled      bool
	PatternGroup string // "all", "secrets", "financial", "pii"; "" defaults to "all"
}

// Service applies data masking to document content. Created once at
// application startup (singleton); thread-safe and stateless aside from
// its compiled patterns.
type Service struct {
	patterns map[string]*CompiledPattern
	group    []string
	enabled  bool
}

// NewService creates a masking service with every built-in pattern
// compiled eagerly; invalid patterns are logged and skipped.
func NewService(cfg Config) *Service {
	groupName := cfg.PatternGroup
	if groupName == "" {
		groupName = "all"
	}
	group, ok := patternGroups[groupName]
	if !ok {
		slog.Warn("masking: unknown pattern group, falling back to \"all\"", "group", groupName)
		group = patternGroups["all"]
	}

	s := &Service{
		patterns: compileBuiltinPatterns(),
		group:    group,
		enabled:  cfg.Enabled,
	}
	slog.Info("masking service initialized",
		"enabled", s.enabled, "group", groupName, "compiled_patterns", len(s.patterns))
	return s
}

// Mask redacts every configured pattern from content. When masking is
// disabled it returns content unchanged (fail-open: a masking bug must
// never block the pipeline from reading its own document).
func (s *Service) Mask(content string) string {
	if !s.enabled || content == "" {
		return content
	}
	masked := content
	for _, name := range s.group {
		pattern, ok := s.patterns[name]
		if !ok {
			continue
		}
		masked = pattern.Regex.ReplaceAllString(masked, pattern.Replacement)
	}
	return masked
}
