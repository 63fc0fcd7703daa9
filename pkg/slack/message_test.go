package slack

import (
	"strings"
	"testing"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReviewNeededMessage(t *testing.T) {
	input := ReviewNeededInput{
		DocID:      42,
		DocTitle:   "Invoice from Acme Corp",
		Kind:       "correspondent",
		Suggestion: "Acme Corp",
		Reasoning:  "Letterhead matches known vendor.",
		Attempts:   3,
	}
	blocks := BuildReviewNeededMessage(input, "https://corvid.example.com")

	require.Len(t, blocks, 2)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":mag:")
	assert.Contains(t, header.Text.Text, "Correspondent")
	assert.Contains(t, header.Text.Text, "Invoice from Acme Corp")
	assert.Contains(t, header.Text.Text, "doc #42")

	body := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, body.Text.Text, "Acme Corp")
	assert.Contains(t, body.Text.Text, "Letterhead matches known vendor.")
	assert.Contains(t, body.Text.Text, "3 attempt(s)")
	assert.Contains(t, body.Text.Text, "corvid-doc-42")
}

func TestBuildReviewNeededMessage_NoTitleFallsBackToDocID(t *testing.T) {
	input := ReviewNeededInput{DocID: 7, Kind: "tag", Suggestion: "invoices"}
	blocks := BuildReviewNeededMessage(input, "https://corvid.example.com")

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, "Document 7")
}

func TestBuildReviewNeededMessage_UnknownKindUsesRawValue(t *testing.T) {
	input := ReviewNeededInput{DocID: 1, Kind: "something_new", Suggestion: "x"}
	blocks := BuildReviewNeededMessage(input, "https://corvid.example.com")

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, "something_new")
}

func TestBuildFailedMessage(t *testing.T) {
	input := FailedInput{
		DocID:        9,
		DocTitle:     "Contract renewal",
		Step:         "tags",
		ErrorMessage: "invariant violation: tag ID not found after add",
	}
	blocks := BuildFailedMessage(input, "https://corvid.example.com")

	require.Len(t, blocks, 2)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":x:")
	assert.Contains(t, header.Text.Text, "tags")
	assert.Contains(t, header.Text.Text, "Contract renewal")
	assert.Contains(t, header.Text.Text, "doc #9")

	body := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, body.Text.Text, "invariant violation")
	assert.Contains(t, body.Text.Text, "corvid-doc-9")
}

func TestTruncateForSlack(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncateForSlack("hello"))
	})

	t.Run("exact limit unchanged", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength)
		assert.Equal(t, text, truncateForSlack(text))
	})

	t.Run("over limit truncated", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength+100)
		result := truncateForSlack(text)
		assert.True(t, len(result) < len(text))
		assert.Contains(t, result, "truncated")
	})

	t.Run("multi-byte runes not split", func(t *testing.T) {
		text := strings.Repeat("🔥", maxBlockTextLength+10)
		result := truncateForSlack(text)
		assert.Contains(t, result, "truncated")
		assert.True(t, utf8.ValidString(result), "result should be valid UTF-8")
		prefix := strings.Split(result, "\n\n_...")[0]
		assert.Equal(t, maxBlockTextLength, utf8.RuneCountInString(prefix))
	})
}
