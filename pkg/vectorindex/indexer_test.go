package vectorindex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codeready-toolchain/corvid/pkg/models"
)

func TestProjectTruncatesAndStripsWorkflowTags(t *testing.T) {
	long := make([]byte, maxContentChars+500)
	for i := range long {
		long[i] = 'a'
	}
	doc := &models.Document{
		ID:       42,
		Title:    "Invoice Amazon January 2024",
		Content:  string(long),
		TagNames: []string{"invoice", "llm-tags-done", "2024", "llm-processed"},
	}
	workflowTags := map[string]bool{"llm-tags-done": true, "llm-processed": true}

	p := Project(doc, "Amazon", "Invoice", workflowTags)

	assert.Equal(t, 42, p.DocID)
	assert.Len(t, p.Content, maxContentChars)
	assert.Equal(t, []string{"invoice", "2024"}, p.Tags)
	assert.Equal(t, "Amazon", p.CorrespondentName)
}

func TestProjectionTextIncludesMetadata(t *testing.T) {
	p := Projection{
		Title:             "Invoice",
		Content:           "body",
		Tags:              []string{"invoice"},
		CorrespondentName: "Amazon",
		DocumentTypeName:  "Invoice",
	}
	text := p.text()
	assert.Contains(t, text, "From: Amazon")
	assert.Contains(t, text, "Type: Invoice")
	assert.Contains(t, text, "Tags: invoice")
	assert.Contains(t, text, "body")
}
