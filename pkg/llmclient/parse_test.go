package llmclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/corvid/pkg/models"
)

func TestParseAnalysisStructured(t *testing.T) {
	raw := `Here is my assessment:
{"suggested_value": "Invoice Amazon January 2024", "reasoning": "header says so", "confidence": 0.9, "alternatives": ["Amazon Invoice"]}
Hope that helps!`

	analysis := ParseAnalysis(raw)
	assert.Equal(t, "Invoice Amazon January 2024", analysis.SuggestedValue)
	assert.Equal(t, "header says so", analysis.Reasoning)
	assert.InDelta(t, 0.9, analysis.Confidence, 0.001)
	assert.Equal(t, []string{"Amazon Invoice"}, analysis.Alternatives)
}

func TestParseAnalysisNestedBracesInsideStrings(t *testing.T) {
	raw := `{"suggested_value": "Contract {draft}", "reasoning": "title contains \"{\" literally", "confidence": 0.8}`
	analysis := ParseAnalysis(raw)
	assert.Equal(t, "Contract {draft}", analysis.SuggestedValue)
}

func TestParseAnalysisExtraOnlyIsStructured(t *testing.T) {
	raw := `{"extra": {"add": ["invoice"], "remove": []}}`
	analysis := ParseAnalysis(raw)
	assert.Empty(t, analysis.SuggestedValue)
	assert.NotNil(t, analysis.Extra["add"])
}

func TestParseAnalysisFallbackCapsConfidence(t *testing.T) {
	raw := "Invoice Amazon January 2024\nBecause the header names Amazon."
	analysis := ParseAnalysis(raw)
	assert.Equal(t, "Invoice Amazon January 2024", analysis.SuggestedValue)
	assert.Equal(t, "Because the header names Amazon.", analysis.Reasoning)
	assert.LessOrEqual(t, analysis.Confidence, 0.5)
}

func TestParseAnalysisNeverPanicsOnGarbage(t *testing.T) {
	for _, raw := range []string{"", "{", "}{", `{"unterminated": "`, "\x00\xff"} {
		assert.NotPanics(t, func() { ParseAnalysis(raw) })
	}
}

func TestParseConfirmation(t *testing.T) {
	keywords := []string{"yes", "confirmed", "accept"}

	tests := []struct {
		raw       string
		confirmed bool
		feedback  string
	}{
		{"Yes, that looks right.", true, ""},
		{"CONFIRMED", true, ""},
		{"I accept this proposal.", true, ""},
		{"no, too generic", false, "no, too generic"},
		{"", false, ""},
	}
	for _, tt := range tests {
		verdict := ParseConfirmation(tt.raw, keywords)
		assert.Equal(t, tt.confirmed, verdict.Confirmed, "raw=%q", tt.raw)
		if !tt.confirmed {
			assert.Equal(t, tt.feedback, verdict.Feedback)
		}
	}
}

func TestParseSchemaSuggestionsFiltersInvalidEntries(t *testing.T) {
	raw := `{"suggestions": [
		{"entity_kind": "correspondent", "suggested_name": "  ACME Corp  ", "confidence": 0.8},
		{"entity_kind": "correspondent", "suggested_name": "   "},
		{"entity_kind": "starship", "suggested_name": "Enterprise"}
	]}`

	suggestions := ParseSchemaSuggestions(raw)
	require.Len(t, suggestions, 1)
	assert.Equal(t, models.EntityKindCorrespondent, suggestions[0].EntityKind)
	assert.Equal(t, "ACME Corp", suggestions[0].SuggestedName)
}

func TestParseSchemaSuggestionsMalformedYieldsNothing(t *testing.T) {
	assert.Empty(t, ParseSchemaSuggestions("no json here"))
	assert.Empty(t, ParseSchemaSuggestions(`{"suggestions": "not a list"}`))
}
