package slack

import (
	"fmt"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var kindLabel = map[string]string{
	"title":             "Title",
	"correspondent":     "Correspondent",
	"document_type":     "Document Type",
	"tag":               "Tag",
	"custom_field":      "Custom Field",
	"document_link":     "Document Link",
	"schema_suggestion": "Schema Suggestion",
}

// docFingerprint is the label of a link at the end of every notification
// posted for a document so later notifications about the same document can
// be found and threaded under it.
func docFingerprint(docID int64) string {
	return fmt.Sprintf("corvid-doc-%d", docID)
}

func documentURL(docID int64, dashboardURL string) string {
	return fmt.Sprintf("%s/documents/%d", dashboardURL, docID)
}

// ReviewNeededInput carries the data needed to announce a new PendingReview.
type ReviewNeededInput struct {
	DocID      int64
	DocTitle   string
	Kind       string
	Suggestion string
	Reasoning  string
	Attempts   int
}

// BuildReviewNeededMessage creates Block Kit blocks announcing that a
// document needs a human decision after the confirmation loop was exhausted.
func BuildReviewNeededMessage(input ReviewNeededInput, dashboardURL string) []goslack.Block {
	label := kindLabel[input.Kind]
	if label == "" {
		label = input.Kind
	}

	header := fmt.Sprintf(":mag: *Review needed — %s*\n<%s|%s> (doc #%d)",
		label, documentURL(input.DocID, dashboardURL), docTitleOrFallback(input.DocTitle, input.DocID), input.DocID)

	body := fmt.Sprintf("*Suggested value:*\n%s", truncateForSlack(input.Suggestion))
	if input.Reasoning != "" {
		body += fmt.Sprintf("\n\n*Reasoning:*\n%s", truncateForSlack(input.Reasoning))
	}
	body += fmt.Sprintf("\n\n_Confirmation loop exhausted after %d attempt(s)._", input.Attempts)
	body += fmt.Sprintf("\n\n<%s|%s>", documentURL(input.DocID, dashboardURL), docFingerprint(input.DocID))

	return []goslack.Block{
		goslack.NewSectionBlock(goslack.NewTextBlockObject(goslack.MarkdownType, header, false, false), nil, nil),
		goslack.NewSectionBlock(goslack.NewTextBlockObject(goslack.MarkdownType, body, false, false), nil, nil),
	}
}

// FailedInput carries the data needed to announce a document that aborted
// the pipeline because of an internal invariant violation.
type FailedInput struct {
	DocID        int64
	DocTitle     string
	Step         string
	ErrorMessage string
}

// BuildFailedMessage creates Block Kit blocks announcing that a document's
// pipeline run was aborted and tagged failed.
func BuildFailedMessage(input FailedInput, dashboardURL string) []goslack.Block {
	header := fmt.Sprintf(":x: *Pipeline failed — %s*\n<%s|%s> (doc #%d)",
		input.Step, documentURL(input.DocID, dashboardURL), docTitleOrFallback(input.DocTitle, input.DocID), input.DocID)

	body := fmt.Sprintf("*Error:*\n%s", truncateForSlack(input.ErrorMessage))
	body += fmt.Sprintf("\n\n<%s|%s>", documentURL(input.DocID, dashboardURL), docFingerprint(input.DocID))

	return []goslack.Block{
		goslack.NewSectionBlock(goslack.NewTextBlockObject(goslack.MarkdownType, header, false, false), nil, nil),
		goslack.NewSectionBlock(goslack.NewTextBlockObject(goslack.MarkdownType, body, false, false), nil, nil),
	}
}

func docTitleOrFallback(title string, docID int64) string {
	if title != "" {
		return title
	}
	return fmt.Sprintf("Document %d", docID)
}

func truncateForSlack(text string) string {
	if utf8.RuneCountInString(text) <= maxBlockTextLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxBlockTextLength]) + "\n\n_... (truncated — view full record in dashboard)_"
}
