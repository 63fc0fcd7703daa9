package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTagNames() TagNames {
	return TagNames{
		StageOCRDone:            "llm-ocr-done",
		StageSummaryDone:        "llm-summary-done",
		StageSchemaReview:       "llm-ocr-done",
		StageSchemaAnalysisDone: "llm-ocr-done",
		StageTitleDone:          "llm-title-done",
		StageCorrespondentDone:  "llm-correspondent-done",
		StageDocumentTypeDone:   "llm-document-type-done",
		StageTagsDone:           "llm-tags-done",
		StageCustomFieldsDone:   "llm-custom-fields-done",
		StageDocumentLinksDone:  "llm-document-links-done",
		StageProcessed:          "llm-processed",
	}
}

func TestDeriveReturnsLatestStage(t *testing.T) {
	tags := testTagNames()

	tests := []struct {
		name    string
		present []string
		want    Stage
	}{
		{"no workflow tags", nil, StagePending},
		{"only content tags", []string{"invoice", "2024"}, StagePending},
		{"ocr done resolves to later reuse stage", []string{"llm-ocr-done"}, StageSchemaAnalysisDone},
		{"title done", []string{"llm-title-done"}, StageTitleDone},
		{"latest wins over stale earlier tag", []string{"llm-ocr-done", "llm-tags-done"}, StageTagsDone},
		{"processed", []string{"llm-processed"}, StageProcessed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			present := map[string]bool{}
			for _, name := range tt.present {
				present[name] = true
			}
			assert.Equal(t, tt.want, Derive(tags, present))
		})
	}
}

func TestNextWalksPipelineOrder(t *testing.T) {
	next, ok := Next(StagePending)
	assert.True(t, ok)
	assert.Equal(t, StageOCRDone, next)

	next, ok = Next(StageTagsDone)
	assert.True(t, ok)
	assert.Equal(t, StageCustomFieldsDone, next)

	_, ok = Next(StageProcessed)
	assert.False(t, ok)
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StageProcessed))
	assert.False(t, IsTerminal(StageTagsDone))
}
