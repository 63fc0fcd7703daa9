package llmclient

import (
	"encoding/json"
	"strings"

	"github.com/codeready-toolchain/corvid/pkg/models"
)

// structuredAnalysis is the JSON shape the prompt templates instruct the
// analyst model to emit. Fields are all optional at the parse layer: a
// response missing some of them still yields a best-effort Analysis
// rather than an error, so malformed output can never fail a parse.
type structuredAnalysis struct {
	SuggestedValue string         `json:"suggested_value"`
	Reasoning      string         `json:"reasoning"`
	Confidence     float64        `json:"confidence"`
	Alternatives   []string       `json:"alternatives"`
	Extra          map[string]any `json:"extra"`
}

// ParseAnalysis extracts an Analysis from an analyst model's raw response.
// It first attempts a structured parse by locating the outermost
// brace-balanced JSON object in the text; on failure it falls back to a
// deterministic text-extraction rule (the first non-empty line is taken
// as the suggested value, the remainder as reasoning) and caps confidence
// at 0.5.
func ParseAnalysis(raw string) models.Analysis {
	if obj, ok := outermostJSONObject(raw); ok {
		var parsed structuredAnalysis
		// A response is structured if it parses and carries either a
		// suggested value or a stage-specific extra payload (tag deltas,
		// field maps, link candidates).
		if err := json.Unmarshal([]byte(obj), &parsed); err == nil && (parsed.SuggestedValue != "" || len(parsed.Extra) > 0) {
			conf := parsed.Confidence
			if conf <= 0 || conf > 1 {
				conf = 0.75
			}
			return models.Analysis{
				SuggestedValue: strings.TrimSpace(parsed.SuggestedValue),
				Reasoning:      strings.TrimSpace(parsed.Reasoning),
				Confidence:     conf,
				Alternatives:   parsed.Alternatives,
				Extra:          parsed.Extra,
			}
		}
	}
	return fallbackAnalysis(raw)
}

// fallbackAnalysis implements the deterministic text-extraction rule used
// when structured parsing fails: the first non-empty line is the
// suggestion, everything after is reasoning, confidence is capped at 0.5.
func fallbackAnalysis(raw string) models.Analysis {
	lines := strings.SplitN(strings.TrimSpace(raw), "\n", 2)
	suggestion := strings.TrimSpace(lines[0])
	reasoning := ""
	if len(lines) > 1 {
		reasoning = strings.TrimSpace(lines[1])
	}
	return models.Analysis{
		SuggestedValue: suggestion,
		Reasoning:      reasoning,
		Confidence:     0.5,
	}
}

// outermostJSONObject scans s for the first '{' and its matching closing
// '}', accounting for nested braces and braces inside string literals, and
// returns the substring between them. Used instead of a naive
// first-'{'-to-last-'}' slice so that prose surrounding the JSON (a
// model's habit of prefacing structured output with commentary) doesn't
// corrupt the match.
func outermostJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
			// inside a string literal, braces don't count
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// ParseSchemaSuggestions extracts the Schema Analysis stage's output: the
// list of net-new entities the document would imply. The expected shape is
// {"suggestions": [{entity_kind, suggested_name, confidence,
// similar_to_existing}, ...]}. Malformed input yields an empty list, never
// an error — a schema pass that can't be parsed simply proposes nothing.
func ParseSchemaSuggestions(raw string) []models.SchemaSuggestion {
	obj, ok := outermostJSONObject(raw)
	if !ok {
		return nil
	}
	var parsed struct {
		Suggestions []models.SchemaSuggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		return nil
	}
	out := parsed.Suggestions[:0]
	for _, s := range parsed.Suggestions {
		s.SuggestedName = strings.TrimSpace(s.SuggestedName)
		if s.SuggestedName == "" {
			continue
		}
		switch s.EntityKind {
		case models.EntityKindCorrespondent, models.EntityKindDocumentType, models.EntityKindTag:
		default:
			continue
		}
		out = append(out, s)
	}
	return out
}

// ParseConfirmation extracts a ConfirmationVerdict from a reviewer model's
// raw response. A response is confirmed iff it contains, case-insensitively,
// any keyword from keywords; otherwise the full response text is surfaced
// as feedback.
func ParseConfirmation(raw string, keywords []string) models.ConfirmationVerdict {
	lower := strings.ToLower(raw)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			return models.ConfirmationVerdict{Confirmed: true}
		}
	}
	return models.ConfirmationVerdict{
		Confirmed: false,
		Feedback:  strings.TrimSpace(raw),
	}
}
